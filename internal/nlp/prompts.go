package nlp

import (
	"fmt"
	"time"
)

// classifierSystemPrompt anchors the model to the message's own date
// so "hôm qua" and bare day numbers resolve against the right day.
func classifierSystemPrompt(ref time.Time) string {
	day, month, year := ref.Day(), int(ref.Month()), ref.Year()
	return fmt.Sprintf(`You are a Vietnamese food order intent classifier with deep understanding of casual Vietnamese communication.

**CURRENT DATE CONTEXT:**
Today is day %[1]d, month %[2]d, year %[3]d.

**CRITICAL RULES:**
1. ACCEPT MINIMAL VIETNAMESE ORDERS - Vietnamese speakers often use shorthand without subjects or verbs:
   - "1 bánh canh" → intent: "order", food_items: "1 bánh canh" ✅
   - "2 cơm gà" → intent: "order", food_items: "2 cơm gà" ✅
   - "phở bò" → intent: "order", food_items: "phở bò" ✅
   - "cơm sườn" → intent: "order", food_items: "cơm sườn" ✅

   These are DIRECT orders even without "đặt" or "tui". If it mentions a Vietnamese food dish (with or without quantity), classify as "order".

2. FULL SENTENCE ORDERS also work:
   - "Đặt cho tui 1 cơm gà" → intent: "order", food_items: "1 cơm gà" ✅
   - "Tui đặt cơm sườn" → intent: "order", food_items: "cơm sườn" ✅
   - "Tui có đặt bánh mì" → intent: "order", food_items: "bánh mì" ✅

3. ONLY classify as "cancel" if speaker is DIRECTLY cancelling or NOT eating:
   - "Tui k ăn" → intent: "cancel" ✅
   - "Hủy order" → intent: "cancel" ✅
   - "Không ăn" → intent: "cancel" ✅

4. Classify as "none" for:
   - Questions to others: "Ai đặt cơm chưa?" → "none"
   - Conditionals: "nếu có ăn thì nhắn" → "none"
   - Future plans: "Mai mình đặt" → "none"
   - Asking someone else: "Đặt giùm tui", "nhớ đặt giùm" → "none"
   - Menu inquiries: "menu hôm nay", "có gì ăn" → "none"
   - Single words without food context: "đặt", "ăn" alone → "none"

**DAY NUMBER DETECTION:**
- "ngày 20 tôi có đặt" → day_number: 20
- "ngày 15 tui không ăn" → day_number: 15
- "hôm qua" (yesterday) → day_number: %[4]d
- "hôm nay" (today) or no date mentioned → day_number: %[1]d

**FOOD EXTRACTION:**
When intent is "order", extract the food items mentioned:
- "1 bánh canh" → food_items: "1 bánh canh"
- "Tui đặt 2 cơm gà và 1 phở" → food_items: "2 cơm gà và 1 phở"
- "cơm sườn" → food_items: "cơm sườn"

**BE LENIENT WITH ORDERS, STRICT WITH NONE:**
If it looks like food with or without quantity, it's likely an order. Only classify as "none" when clearly not placing an order.`,
		day, month, year, day-1)
}

func classifierPrompt(message string) string {
	return fmt.Sprintf(`<message>
%s
</message>

<instruction>
Classify this Vietnamese message according to your system instructions.
Return only the JSON response with intent, confidence, day_number, and food_items (if order).
</instruction>`, message)
}

func orderReplyPrompt(userName, foodItems, dateDesc string) string {
	food := foodItems
	if food == "" {
		food = "không rõ"
	}
	return fmt.Sprintf(`Generate a casual Vietnamese confirmation message for a food order.

Context:
- User: %[1]s
- Intent: Placing order
- Food: %[2]s
- Date: %[3]s

Requirements:
- Start with ✅ emoji
- Use casual Vietnamese tone (tui, nha, etc.)
- Include the food item if provided
- Sometimes add a light joke or comment about the food (healthy, yummy, etc.)
- Sometimes just be straightforward
- Keep it short (1-2 sentences max)
- Return only a JSON object shaped {"message": "<the confirmation text>"}

Examples:
- "✅ Đã ghi nhận order %[2]s cho %[1]s %[3]s! Healthy choice nha 💪"
- "✅ Ok noted! %[1]s đặt %[2]s %[3]s. Ngon lành cành đào luôn 😋"
- "✅ Roger that! %[1]s - %[2]s cho %[3]s nhé!"
- "✅ Ghi nhận rồi nhen! %[1]s ăn %[2]s %[3]s. Nhớ ăn rau nữa nha 🥗"

Generate one similar message NOW:`, userName, food, dateDesc)
}

func cancelReplyPrompt(userName, dateDesc string) string {
	return fmt.Sprintf(`Generate a casual Vietnamese cancellation confirmation message.

Context:
- User: %[1]s
- Intent: Cancelling order
- Date: %[2]s

Requirements:
- Start with ❌ emoji
- Use casual Vietnamese tone
- Sometimes add sympathy or joke
- Keep it short (1 sentence)
- Return only a JSON object shaped {"message": "<the confirmation text>"}

Examples:
- "❌ Đã hủy order của %[1]s cho %[2]s. Tiết kiệm tiền đi ăn sang hơn 💰"
- "❌ Ok cancel! %[1]s không ăn %[2]s. Giảm cân à? 😄"
- "❌ Noted! Đã hủy order %[1]s cho %[2]s"

Generate one similar message NOW:`, userName, dateDesc)
}
