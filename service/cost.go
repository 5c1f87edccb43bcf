package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rjbiz/jams/consts"
	"github.com/rjbiz/jams/kvstore"
	"github.com/rjbiz/jams/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// 每百万 token 的美元单价，按客户端传入的模型 id 精确匹配
var modelPrices = map[string]decimal.Decimal{
	"google/gemini-2.0-flash-exp:free": decimal.Zero,
	"deepseek/deepseek-chat":           decimal.RequireFromString("0.00014"),
	"deepseek/deepseek-r1":             decimal.RequireFromString("0.00014"),
	"deepseek/deepseek-r1:free":        decimal.Zero,
	"openai/gpt-4o-mini":               decimal.RequireFromString("0.00015"),
	"anthropic/claude-3-haiku":         decimal.RequireFromString("0.00025"),
	"qwen/qwen-2.5-72b-instruct":       decimal.RequireFromString("0.00007"),
	"mistralai/mistral-small":          decimal.RequireFromString("0.00020"),
	"MiniMax-M1":                       decimal.RequireFromString("0.00020"),
	"MiniMax-Text-01":                  decimal.RequireFromString("0.00015"),
	"deepseek-ai/DeepSeek-R1":          decimal.RequireFromString("0.00014"),
	"chutesai/Devstral-Small-2505":     decimal.RequireFromString("0.00006"),
}

var fallbackPrice = decimal.RequireFromString("0.0001")

// PriceFor 只按客户端模型 id 精确匹配，未命中用兜底价。
// 表里的 0 价格是有效值，不会落到兜底价
func PriceFor(model string) decimal.Decimal {
	if price, ok := modelPrices[model]; ok {
		return price
	}
	return fallbackPrice
}

// CalculateCost total_tokens / 1e6 * price
func CalculateCost(usage models.Usage, model string) decimal.Decimal {
	if usage.TotalTokens <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(usage.TotalTokens).Mul(PriceFor(model)).Shift(-6)
}

// DayKey cost:YYYY-MM-DD，按 UTC 分桶
func DayKey(t time.Time) string {
	return consts.CostKeyPrefix + t.UTC().Format(consts.CostDayLayout)
}

type DailyCost struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

// Tracker 日成本计数。store 为空时所有写入都跳过
type Tracker struct {
	store  kvstore.Store
	ledger Ledger
	now    func() time.Time
	group  singleflight.Group
}

func NewTracker(store kvstore.Store, ledger Ledger) *Tracker {
	return &Tracker{
		store:  store,
		ledger: ledger,
		now:    time.Now,
	}
}

func (t *Tracker) Enabled() bool {
	return t != nil && t.store != nil
}

func (t *Tracker) Ledger() Ledger {
	if t == nil {
		return nil
	}
	return t.ledger
}

// Accrue 把本次调用的成本加到当天计数上，并追加一条流水。
// 返回本次成本；计数和流水的错误会合并返回，由调用方决定是否忽略
func (t *Tracker) Accrue(ctx context.Context, usage models.Usage, model string, provider consts.ProviderKind, upstreamModel string) (decimal.Decimal, error) {
	if !t.Enabled() {
		return decimal.Zero, nil
	}

	now := t.now()
	cost := CalculateCost(usage, model)

	var errs []error
	if cost.IsPositive() {
		if _, err := t.store.IncrBy(ctx, DayKey(now), cost, consts.CostTTL); err != nil {
			errs = append(errs, fmt.Errorf("incr day counter: %w", err))
		}
	}

	if t.ledger != nil && usage.TotalTokens > 0 {
		entry := &models.CostEntry{
			UUID:             uuid.NewString(),
			Day:              now.UTC().Format(consts.CostDayLayout),
			Provider:         provider.String(),
			ModelID:          model,
			UpstreamModel:    upstreamModel,
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
			Cost:             cost.InexactFloat64(),
		}
		if err := t.ledger.Append(ctx, entry); err != nil {
			errs = append(errs, fmt.Errorf("append ledger: %w", err))
		}
	}

	return cost, errors.Join(errs...)
}

// Today 当天累计成本。同一天的并发读合并成一次存储访问
func (t *Tracker) Today(ctx context.Context) (decimal.Decimal, error) {
	if !t.Enabled() {
		return decimal.Zero, nil
	}
	key := DayKey(t.now())
	// 合并后的读取不跟随首个调用方取消
	readCtx := context.WithoutCancel(ctx)
	v, err, _ := t.group.Do(key, func() (any, error) {
		value, _, err := t.store.Get(readCtx, key)
		return value, err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return v.(decimal.Decimal), nil
}

// Daily 最近 days 天的成本，按日期升序，最后一项是今天
func (t *Tracker) Daily(ctx context.Context, days int) ([]DailyCost, error) {
	if !t.Enabled() || days <= 0 {
		return []DailyCost{}, nil
	}

	today := t.now().UTC()
	keys := make([]string, days)
	result := make([]DailyCost, days)
	for i := range days {
		day := today.AddDate(0, 0, i-days+1)
		keys[i] = DayKey(day)
		result[i].Date = day.Format(consts.CostDayLayout)
	}

	values, err := t.store.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		result[i].Cost = v.InexactFloat64()
	}
	return result, nil
}
