package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/models"
)

// ReminderSummary reports candidate counts for one day-offset of a dispatch run
type ReminderSummary struct {
	DaysBefore int    `json:"days_before"`
	TargetDate string `json:"target_date"`
	Scheduled  int    `json:"scheduled"`
	Recurrence int    `json:"recurrence"`
}

// DefaultReminderOffsets are the day-offsets used when a dispatch request
// doesn't specify its own
var DefaultReminderOffsets = []int{3, 1}

// DispatchReminders scans orders due in the given day-offsets and sends
// delivery reminders over email, SMS, and WhatsApp. A channel that was
// already logged for an (order, reminder type) pair is skipped, so repeated
// runs never re-send. One order's failure never aborts the rest of the batch.
// Returns the number of reminders actually sent and a per-offset summary.
func DispatchReminders(db *gorm.DB, dayOffsets []int, now time.Time) (int, []ReminderSummary) {
	today := now.UTC()
	totalSent := 0
	summary := make([]ReminderSummary, 0, len(dayOffsets))

	for _, n := range dayOffsets {
		targetDate := today.AddDate(0, 0, n).Format("2006-01-02")
		reminderType := fmt.Sprintf("%d_day", n)

		// Upcoming scheduled deliveries (non-cancelled, non-delivered)
		var scheduled []models.Order
		if err := db.Where("delivery_datetime LIKE ?", targetDate+"%").
			Where("status NOT IN ?", []string{models.StatusCancelled, models.StatusDelivered}).
			Find(&scheduled).Error; err != nil {
			log.Printf("reminders: scheduled query for %s failed: %v", targetDate, err)
		}

		// Annual recurrences due (delivered recurring orders)
		var recurrence []models.Order
		if err := db.Where("next_recurrence_date = ? AND is_recurring = ? AND status = ?",
			targetDate, true, models.StatusDelivered).
			Find(&recurrence).Error; err != nil {
			log.Printf("reminders: recurrence query for %s failed: %v", targetDate, err)
		}

		for _, order := range scheduled {
			totalSent += remindOrder(db, order, n, reminderType, false)
		}
		for _, order := range recurrence {
			totalSent += remindOrder(db, order, n, reminderType, true)
		}

		summary = append(summary, ReminderSummary{
			DaysBefore: n,
			TargetDate: targetDate,
			Scheduled:  len(scheduled),
			Recurrence: len(recurrence),
		})
	}

	return totalSent, summary
}

// remindOrder attempts the not-yet-logged channels for a single order and
// returns how many reminders went out. Failures are contained here.
func remindOrder(db *gorm.DB, order models.Order, daysBefore int, reminderType string, isRecurrence bool) int {
	var logs []models.ReminderLog
	if err := db.Where("order_id = ? AND reminder_type = ?", order.ID, reminderType).
		Find(&logs).Error; err != nil {
		log.Printf("reminders: log lookup for order %s failed: %v", order.ID, err)
		return 0
	}
	already := make(map[string]bool, len(logs))
	for _, l := range logs {
		already[l.Channel] = true
	}

	sent := 0
	if !already["email"] && sendEmailReminder(order, daysBefore, isRecurrence) {
		sent += logReminder(db, order.ID, reminderType, "email")
	}

	smsSent, waSent := sendPhoneReminders(order, daysBefore, isRecurrence)
	if !already["sms"] && smsSent {
		sent += logReminder(db, order.ID, reminderType, "sms")
	}
	if !already["whatsapp"] && waSent {
		sent += logReminder(db, order.ID, reminderType, "whatsapp")
	}
	return sent
}

func logReminder(db *gorm.DB, orderID, reminderType, channel string) int {
	record := models.ReminderLog{OrderID: orderID, ReminderType: reminderType, Channel: channel}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("reminders: failed to log %s reminder for order %s: %v", channel, orderID, err)
		return 0
	}
	return 1
}

func reminderTiming(daysBefore int) string {
	if daysBefore == 1 {
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", daysBefore)
}

func reminderKind(isRecurrence bool) string {
	if isRecurrence {
		return "Anniversary"
	}
	return "Scheduled"
}

func formatDeliveryDate(deliveryDatetime string) string {
	if len(deliveryDatetime) < 10 {
		return ""
	}
	d, err := time.Parse("2006-01-02", deliveryDatetime[:10])
	if err != nil {
		return deliveryDatetime[:10]
	}
	return fmt.Sprintf("%s %d, %d", d.Format("Jan"), d.Day(), d.Year())
}

// sendEmailReminder sends the reminder email for one order; false when the
// sender is not configured, the order has no email, or the send failed.
func sendEmailReminder(order models.Order, daysBefore int, isRecurrence bool) bool {
	sender := GetEmailSender()
	if sender == nil || order.CustomerEmail == "" {
		return false
	}
	cfg := config.GetConfig()
	timing := reminderTiming(daysBefore)
	kind := reminderKind(isRecurrence)
	subject := fmt.Sprintf("Your FloranFlowers %s Delivery is %s! 🌸", kind, titleCase(timing))
	html := buildReminderEmailHTML(order, daysBefore, isRecurrence)
	if err := sender.SendEmail(cfg.ReminderFromEmail, []string{order.CustomerEmail}, subject, html); err != nil {
		log.Printf("reminders: email for order %s failed: %v", order.ID, err)
		return false
	}
	return true
}

// sendPhoneReminders sends the SMS and WhatsApp reminders for one order.
// Each channel succeeds or fails on its own.
func sendPhoneReminders(order models.Order, daysBefore int, isRecurrence bool) (smsSent, waSent bool) {
	sender := GetMessageSender()
	if sender == nil || order.CustomerPhone == "" {
		return false, false
	}
	cfg := config.GetConfig()

	msg := fmt.Sprintf("FloranFlowers Reminder: Your %s flower delivery (Order %s) arrives %s",
		reminderKind(isRecurrence), order.ID, reminderTiming(daysBefore))
	if formatted := formatDeliveryDate(order.DeliveryDatetime); formatted != "" {
		msg += " on " + formatted
	}
	msg += ". Please ensure someone is available."

	if cfg.TwilioPhoneNumber != "" {
		if err := sender.SendSMS(cfg.TwilioPhoneNumber, order.CustomerPhone, msg); err != nil {
			log.Printf("reminders: sms for order %s failed: %v", order.ID, err)
		} else {
			smsSent = true
		}
	}
	if cfg.TwilioWhatsAppFrom != "" {
		if err := sender.SendWhatsApp(cfg.TwilioWhatsAppFrom, order.CustomerPhone, msg); err != nil {
			log.Printf("reminders: whatsapp for order %s failed: %v", order.ID, err)
		} else {
			waSent = true
		}
	}
	return smsSent, waSent
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func buildReminderEmailHTML(order models.Order, daysBefore int, isRecurrence bool) string {
	firstName := "there"
	if fields := strings.Fields(order.CustomerName); len(fields) > 0 {
		firstName = fields[0]
	}
	timing := reminderTiming(daysBefore)
	kind := reminderKind(isRecurrence)

	dateRow := ""
	if formatted := formatDeliveryDate(order.DeliveryDatetime); formatted != "" {
		dateRow = "<div style='font-size:0.88rem;color:#555;margin-top:0.25rem;'>Delivery: " + formatted + "</div>"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background:#f4f4f5;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;">
  <div style="max-width:560px;margin:2rem auto;border-radius:12px;overflow:hidden;box-shadow:0 4px 24px rgba(0,0,0,0.08);">
    <div style="background:#1a1a1a;padding:1.5rem 2rem;display:flex;align-items:center;gap:0.75rem;">
      <span style="font-size:1.4rem;">🌸</span>
      <span style="color:white;font-size:1.05rem;font-weight:700;letter-spacing:0.01em;">FloranFlowers</span>
      <span style="color:#888;margin-left:0.5rem;font-size:0.85rem;">/ Delivery Reminder</span>
    </div>
    <div style="background:white;padding:2rem;">
      <h1 style="font-size:1.3rem;font-weight:700;color:#111;margin:0 0 0.5rem;">
        Hello %s, your %s delivery is %s!
      </h1>
      <p style="color:#666;font-size:0.95rem;line-height:1.6;margin:0 0 1.5rem;">
        We're getting your flowers ready. Here's a summary of your upcoming delivery.
      </p>
      <div style="background:#f8f9fa;border:1px solid #e4e4e7;border-radius:10px;padding:1.25rem;margin-bottom:1.5rem;">
        <div style="font-size:0.78rem;font-weight:700;text-transform:uppercase;letter-spacing:0.06em;color:#888;margin-bottom:0.5rem;">Order Details</div>
        <div style="font-size:0.95rem;font-weight:700;color:#111;font-family:monospace;">%s</div>
        %s
      </div>
      <div style="background:#f0fdf4;border:1px solid #bbf7d0;border-radius:10px;padding:1.25rem;margin-bottom:1.5rem;">
        <div style="font-size:0.82rem;font-weight:700;color:#15803d;margin-bottom:0.5rem;">💡 Tips for your flowers</div>
        <ul style="margin:0;padding-left:1.25rem;color:#166534;font-size:0.85rem;line-height:1.8;">
          <li>Ensure someone is available to receive the delivery</li>
          <li>Trim stems at an angle before placing in water</li>
          <li>Have a clean vase and fresh water ready</li>
        </ul>
      </div>
      <p style="color:#aaa;font-size:0.78rem;margin:0;">
        Thank you for choosing FloranFlowers 🌸<br>
        If you have questions, reply to this email or visit our website.
      </p>
    </div>
  </div>
</body>
</html>`, firstName, kind, timing, order.ID, dateRow)
}
