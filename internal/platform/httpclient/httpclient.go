package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20 // 1MB de respuesta es más que suficiente
)

// Client envuelve *http.Client con helpers comunes para adapters.
type Client struct {
	HTTP *http.Client
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{Timeout: timeout},
	}
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	c := New(timeout)
	if tr != nil {
		c.HTTP.Transport = tr
	}
	return c
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// FilePart es el archivo a adjuntar en un POST multipart.
type FilePart struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// PostMultipart arma un multipart/form-data con un archivo + campos de
// texto, lo postea y decodifica la respuesta JSON en out (out nil => se
// ignora el body). Status no-2xx => *HTTPError.
func (c *Client) PostMultipart(
	ctx context.Context,
	url string,
	file FilePart,
	fields map[string]string,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}
	if strings.TrimSpace(url) == "" {
		return errors.New("httpclient: empty url")
	}
	if strings.TrimSpace(file.Field) == "" {
		return errors.New("httpclient: file part requires a field name")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := createFilePart(mw, file)
	if err != nil {
		return fmt.Errorf("httpclient: create file part: %w", err)
	}
	if _, err := fw.Write(file.Data); err != nil {
		return fmt.Errorf("httpclient: write file part: %w", err)
	}

	// Campos en orden estable (a los tests les simplifica la vida).
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := mw.WriteField(k, fields[k]); err != nil {
			return fmt.Errorf("httpclient: write field %s: %w", k, err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("httpclient: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func createFilePart(mw *multipart.Writer, file FilePart) (io.Writer, error) {
	if strings.TrimSpace(file.ContentType) == "" {
		return mw.CreateFormFile(file.Field, file.Name)
	}

	// CreateFormFile fija application/octet-stream; para mandar un
	// Content-Type propio (audio/wav) hay que armar el header a mano.
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
	h.Set("Content-Type", file.ContentType)
	return mw.CreatePart(h)
}
