// Package notify рассылает события шины во внешние webhook'и.
package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/annel0/aoc2024/internal/eventbus"
	"github.com/annel0/aoc2024/internal/logging"
)

// SignatureHeader заголовок с HMAC-SHA256 подписью тела
const SignatureHeader = "X-Webhook-Signature"

// Webhook описывает исходящий webhook
type Webhook struct {
	Name       string        `yaml:"name" json:"name"`
	URL        string        `yaml:"url" json:"url"`
	Secret     string        `yaml:"secret" json:"-"`
	Events     []string      `yaml:"events" json:"events"` // типы событий, "*" значит все
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	RetryCount int           `yaml:"retry_count" json:"retry_count"`
}

// Status статистика доставки webhook'а
type Status struct {
	Delivered    int        `json:"delivered"`
	FailureCount int        `json:"failure_count"`
	LastUsed     *time.Time `json:"last_used,omitempty"`
}

// Notifier доставляет события подписанным webhook'ам
type Notifier struct {
	webhooks   []Webhook
	httpClient *http.Client
	backoff    time.Duration // задержка перед повтором, растёт линейно

	mu       sync.Mutex
	status   map[string]*Status
	wg       sync.WaitGroup
	stop     chan struct{} // закрывается в Shutdown, прерывает ожидание повтора
	stopOnce sync.Once
	logger   *logging.Logger
}

// NewNotifier создаёт Notifier; пустые Timeout и RetryCount получают умолчания
func NewNotifier(webhooks []Webhook) *Notifier {
	n := &Notifier{
		httpClient: &http.Client{},
		backoff:    time.Second,
		status:     make(map[string]*Status),
		stop:       make(chan struct{}),
		logger:     logging.GetComponentLogger("notify"),
	}
	for _, w := range webhooks {
		if w.Timeout <= 0 {
			w.Timeout = 30 * time.Second
		}
		if w.RetryCount < 0 {
			w.RetryCount = 0
		}
		if w.Name == "" {
			w.Name = w.URL
		}
		n.webhooks = append(n.webhooks, w)
		n.status[w.Name] = &Status{}
	}
	return n
}

// Attach подписывает Notifier на все события шины
func (n *Notifier) Attach(ctx context.Context, bus eventbus.EventBus) (eventbus.Subscription, error) {
	return bus.Subscribe(ctx, eventbus.Filter{}, func(ctx context.Context, ev *eventbus.Envelope) {
		n.Notify(ctx, ev)
	})
}

// Notify отправляет событие всем подписанным webhook'ам асинхронно
func (n *Notifier) Notify(ctx context.Context, ev *eventbus.Envelope) {
	data, err := json.Marshal(ev)
	if err != nil {
		n.logger.Error("❌ Ошибка маршалинга события %s: %v", ev.ID, err)
		return
	}

	for _, w := range n.webhooks {
		if !subscribed(w, ev.EventType) {
			continue
		}
		n.wg.Add(1)
		go func(w Webhook) {
			defer n.wg.Done()
			n.deliver(context.WithoutCancel(ctx), w, ev.EventType, data)
		}(w)
	}
}

// Wait ждёт завершения начатых доставок
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// Shutdown отменяет ожидающие повторы и ждёт текущие отправки не дольше ctx
func (n *Notifier) Shutdown(ctx context.Context) error {
	n.stopOnce.Do(func() { close(n.stop) })

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status возвращает копию статистики webhook'а
func (n *Notifier) Status(name string) (Status, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	s, ok := n.status[name]
	if !ok {
		return Status{}, false
	}
	return *s, true
}

func subscribed(w Webhook, eventType string) bool {
	return slices.Contains(w.Events, eventType) || slices.Contains(w.Events, "*")
}

// deliver отправляет тело с повторами
func (n *Notifier) deliver(ctx context.Context, w Webhook, eventType string, body []byte) {
	success := false
retry:
	for attempt := 0; attempt <= w.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * n.backoff):
			case <-n.stop:
				n.logger.Warn("⏹️  Повторы для webhook %s прерваны остановкой", w.Name)
				break retry
			case <-ctx.Done():
				break retry
			}
		}
		err := n.send(ctx, w, eventType, body)
		if err == nil {
			success = true
			n.logger.Debug("✅ Событие %s отправлено в webhook %s", eventType, w.Name)
			break retry
		}
		n.logger.Warn("⚠️  Попытка %d/%d для webhook %s: %v", attempt+1, w.RetryCount+1, w.Name, err)
	}

	n.mu.Lock()
	now := time.Now()
	st := n.status[w.Name]
	st.LastUsed = &now
	if success {
		st.Delivered++
	} else {
		st.FailureCount++
	}
	n.mu.Unlock()
}

func (n *Notifier) send(ctx context.Context, w Webhook, eventType string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, w.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "aoc2024/1.0")
	req.Header.Set("X-Event-Type", eventType)
	if w.Secret != "" {
		req.Header.Set(SignatureHeader, Sign(body, w.Secret))
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("статус %d", resp.StatusCode)
	}
	return nil
}

// Sign возвращает HMAC-SHA256 подпись тела в виде sha256=<hex>
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify проверяет подпись в постоянное время
func Verify(body []byte, secret, signature string) bool {
	return hmac.Equal([]byte(Sign(body, secret)), []byte(signature))
}
