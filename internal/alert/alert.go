// Package alert notifies operators when products fall to or below their
// minimum stock level. Events are queued in Redis and mailed out, with a
// daily aggregate summary.
package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stockpile-io/stockpile/internal/config"
	"github.com/stockpile-io/stockpile/internal/models"
	"github.com/stockpile-io/stockpile/internal/policy"
	"github.com/stockpile-io/stockpile/internal/redissvc"
)

var (
	smtpCfg config.SMTP

	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func SetSMTPConfig(cfg config.SMTP) {
	smtpCfg = cfg
}

type LowStockEvent struct {
	ProductID string         `json:"product_id"`
	Name      string         `json:"name"`
	SKU       string         `json:"sku"`
	Stock     int            `json:"stock"`
	MinLevel  int            `json:"min_level"`
	Urgency   policy.Urgency `json:"urgency"`
	Time      time.Time      `json:"time"`
}

const DailyAlertLogKey = "stock:alertlog:daily"

// CheckProduct records and mails a low-stock alert if the product needs
// restocking. Failures are logged, never surfaced to the triggering request.
func CheckProduct(p models.Product) {
	if !policy.NeedsRestock(p) {
		return
	}

	event := LowStockEvent{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Stock:     p.CurrentStock,
		MinLevel:  p.MinStockLevel,
		Urgency:   policy.UrgencyOf(p),
		Time:      time.Now(),
	}

	log.Printf("⚠️ ALERT: product %s (%s) needs restock: stock=%d min=%d urgency=%s",
		p.ID, p.Name, p.CurrentStock, p.MinStockLevel, event.Urgency)

	if rdb != nil {
		data, _ := json.Marshal(event)
		_ = rdb.RPush(ctx, DailyAlertLogKey, data).Err()
	}

	if smtpCfg.Server == "" {
		return
	}

	subject := fmt.Sprintf("⚠️ LOW STOCK: %s (%s)", p.Name, p.SKU)
	body := fmt.Sprintf("Product: %s\nSKU: %s\nStock: %d\nMin level: %d\nSuggested restock: %d\nTime: %s",
		p.Name, p.SKU, p.CurrentStock, p.MinStockLevel, policy.SuggestedQuantity(p), event.Time.Format(time.RFC3339))
	sendMail(subject, body, "text/plain")
}

func sendMail(subject, body, contentType string) {
	msg := strings.Join([]string{
		"From: " + smtpCfg.From,
		"To: " + smtpCfg.To,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: %s; charset=\"UTF-8\"", contentType),
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", smtpCfg.Server, smtpCfg.Port)
	auth := smtp.PlainAuth("", smtpCfg.User, smtpCfg.Password, smtpCfg.Server)
	if smtpCfg.AuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, smtpCfg.From, []string{smtpCfg.To}, []byte(msg)); err != nil {
			log.Printf("Failed to send alert email: %v\n", err)
		}
	}()
}

// StartDailySummary mails an aggregate of the day's low-stock events once a
// day, shortly before midnight.
func StartDailySummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailySummary()
	}
}

func SendDailySummary() {
	if rdb == nil {
		return
	}

	entries, err := rdb.LRange(ctx, DailyAlertLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyAlertLogKey).Err() // clear after reading

	var events []LowStockEvent
	urgencyCounts := make(map[policy.Urgency]int)
	productCounts := make(map[string]int)

	for _, item := range entries {
		var event LowStockEvent
		if err := json.Unmarshal([]byte(item), &event); err == nil {
			events = append(events, event)
			urgencyCounts[event.Urgency]++
			productCounts[event.Name]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>📊 Daily Low-Stock Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total alerts: <strong>%d</strong></p>", len(events)))

	sb.WriteString("<h3>🚨 By Urgency</h3><ul>")
	for urgency, count := range urgencyCounts {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", urgency, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>📦 By Product</h3><ul>")
	for name, count := range productCounts {
		sb.WriteString(fmt.Sprintf("<li>%s: %d</li>", name, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>📋 Full Log</h3><ul>")
	for _, event := range events {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> (%s) stock=%d/%d at %s</li>",
			event.Name, event.SKU, event.Stock, event.MinLevel, event.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	if smtpCfg.Server == "" {
		log.Printf("📊 Daily low-stock summary: %d alerts (no SMTP configured)", len(events))
		return
	}

	sendMail("📊 Daily Low-Stock Report", sb.String(), "text/html")
	log.Println("📬 Daily low-stock summary sent via SMTP.")
}
