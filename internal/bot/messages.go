package bot

import (
	"fmt"

	"github.com/nduythai/lunchbot/internal/nlp"
)

// invalidDateReply is sent when a message names a day that does not
// exist in the month it would land in.
const invalidDateReply = "⚠️ Ngày trong tin nhắn không hợp lệ, vui lòng kiểm tra lại."

// markFailureReply names the user and date so people can spot a
// display name that does not match the sheet. Order failures carry the
// extra nudge to check the Telegram name.
func markFailureReply(intent nlp.Intent, userName, dateDesc string) string {
	if intent == nlp.IntentOrder {
		return fmt.Sprintf(
			"⚠️ Không tìm thấy tên '%s' trong bảng hoặc không tìm thấy cột ngày %s. Vui lòng kiểm tra tên Telegram của bạn có trùng với tên trong sheet không.",
			userName, dateDesc,
		)
	}
	return fmt.Sprintf("⚠️ Không tìm thấy tên '%s' trong bảng hoặc không tìm thấy cột ngày %s.", userName, dateDesc)
}
