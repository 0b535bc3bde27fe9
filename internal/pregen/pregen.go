// Package pregen 调用外部 TTS 服务，提前生成单词和字母的音频缓存
package pregen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Result 单个条目的生成结果
type Result struct {
	Item   string
	Cached bool
	Err    error
}

type Summary struct {
	Total       int
	Generated   int
	Cached      int
	Failed      int
	FailedItems []string
}

// Client TTS 服务客户端，请求之间按 delay 限速
type Client struct {
	BaseURL string
	HTTP    *http.Client
	limiter *rate.Limiter
}

func NewClient(baseURL string, delay time.Duration) *Client {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(limit, 1),
	}
}

type ttsResponse struct {
	Cached  bool   `json:"cached"`
	URL     string `json:"url"`
	Phoneme string `json:"phoneme"`
}

// Health 服务健康信息，字段缺失时为空
type Health struct {
	Status   string `json:"status"`
	Platform string `json:"platform"`
}

func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.getJSON(ctx, "/api/health", nil, &h); err != nil {
		return nil, fmt.Errorf("tts server unavailable: %w", err)
	}
	return &h, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) generate(ctx context.Context, path, param, item string) Result {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{Item: item, Err: err}
	}
	var r ttsResponse
	if err := c.getJSON(ctx, path, url.Values{param: {item}}, &r); err != nil {
		return Result{Item: item, Err: err}
	}
	return Result{Item: item, Cached: r.Cached}
}

func (c *Client) Word(ctx context.Context, text string) Result {
	return c.generate(ctx, "/api/tts/word", "text", text)
}

func (c *Client) Letter(ctx context.Context, char string) Result {
	return c.generate(ctx, "/api/tts/letter", "char", char)
}

// Run 依次生成所有条目，单个失败不会中断；progress 可为 nil
func Run(ctx context.Context, items []string, fetch func(context.Context, string) Result, progress func(i int, r Result)) Summary {
	s := Summary{Total: len(items)}
	for i, item := range items {
		if ctx.Err() != nil {
			s.Failed += len(items) - i
			s.FailedItems = append(s.FailedItems, items[i:]...)
			break
		}
		r := fetch(ctx, item)
		switch {
		case r.Err != nil:
			s.Failed++
			s.FailedItems = append(s.FailedItems, item)
		case r.Cached:
			s.Cached++
		default:
			s.Generated++
		}
		if progress != nil {
			progress(i, r)
		}
	}
	return s
}

// Letters a-z
func Letters() []string {
	letters := make([]string, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		letters = append(letters, string(r))
	}
	return letters
}
