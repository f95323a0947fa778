package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/internal/entity"
	"github.com/tkarvonen/huoltokirja/internal/llm"
)

// ExtractFields implements llm.FieldExtractor using text-only chat/completions.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (entity.FieldSet, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.OCRText),
		"missing_fields", req.MissingFields,
	)

	schema := llm.BuildFieldJSONSchema()
	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	// Sanitize first: the model occasionally adds keys or types outside the
	// schema, and a salvageable answer beats a rejected one.
	fields, cleaned, dropped, sErr := llm.NormalizeAndSanitizeJSON([]byte(content), c.logger)
	if sErr != nil {
		c.logger.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", sErr, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, []byte(content), fmt.Errorf("sanitize failed: %w", sErr)
	}
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.logger.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}
	if len(dropped) > 0 {
		c.logger.Warn("llm.extract.sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"fields", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, cleaned, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
