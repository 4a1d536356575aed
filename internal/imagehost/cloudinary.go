package imagehost

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	mHttp "github.com/matt-dz/receitas/internal/http"
	mJson "github.com/matt-dz/receitas/internal/json"
)

const DefaultCloudinaryBaseURL = "https://api.cloudinary.com"

type CloudinaryConfig struct {
	BaseURL   string
	CloudName string
	APIKey    string
	APISecret string
}

// Cloudinary talks to the Cloudinary upload API with signed requests.
type Cloudinary struct {
	http   *mHttp.HTTP
	config CloudinaryConfig
	now    func() time.Time
}

var _ Host = (*Cloudinary)(nil)

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
}

type cloudinaryDestroyResponse struct {
	Result string `json:"result"`
}

func NewCloudinary(http *mHttp.HTTP, config CloudinaryConfig) *Cloudinary {
	if config.BaseURL == "" {
		config.BaseURL = DefaultCloudinaryBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Cloudinary{
		http:   http,
		config: config,
		now:    time.Now,
	}
}

func (c *Cloudinary) endpoint(action string) string {
	return fmt.Sprintf("%s/v1_1/%s/image/%s", c.config.BaseURL, url.PathEscape(c.config.CloudName), action)
}

// signedParams adds timestamp, api_key and signature to params.
func (c *Cloudinary) signedParams(params map[string]string) map[string]string {
	signed := make(map[string]string, len(params)+3)
	for k, v := range params {
		signed[k] = v
	}
	signed["timestamp"] = strconv.FormatInt(c.now().Unix(), 10)
	signed["signature"] = sign(signed, c.config.APISecret)
	signed["api_key"] = c.config.APIKey
	return signed
}

// sign computes the Cloudinary request signature: the sha1 of the
// alphabetically sorted "key=value" pairs joined by "&", followed by the secret.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

func (c *Cloudinary) Upload(ctx context.Context, upload UploadRequest) (Asset, error) {
	params := c.signedParams(map[string]string{
		"folder":    upload.Folder,
		"public_id": upload.ID,
	})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range params {
		if err := writer.WriteField(k, v); err != nil {
			return Asset{}, fmt.Errorf("writing form field %s: %w", k, err)
		}
	}
	part, err := writer.CreateFormFile("file", upload.ID+upload.File.Suffix)
	if err != nil {
		return Asset{}, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(upload.File.Data); err != nil {
		return Asset{}, fmt.Errorf("writing form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Asset{}, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx,
		"POST", c.endpoint("upload"), body.Bytes())
	if err != nil {
		return Asset{}, fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := c.http.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("uploading image: %w", err)
	}
	if err := mHttp.ExpectStatus2xx(resp); err != nil {
		return Asset{}, fmt.Errorf("failed to upload image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var uploaded cloudinaryUploadResponse
	if err := mJson.DecodeJSON(&uploaded, json.NewDecoder(resp.Body)); err != nil {
		return Asset{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	asset := Asset{
		URL:      uploaded.SecureURL,
		PublicID: uploaded.PublicID,
	}
	if asset.URL == "" {
		asset.URL = uploaded.URL
	}
	return asset, nil
}

func (c *Cloudinary) Delete(ctx context.Context, publicID string) error {
	form := url.Values{}
	for k, v := range c.signedParams(map[string]string{"public_id": publicID}) {
		form.Set(k, v)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx,
		"POST", c.endpoint("destroy"), []byte(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("destroying image: %w", err)
	}
	if err := mHttp.ExpectStatus2xx(resp); err != nil {
		return fmt.Errorf("failed to destroy image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var destroyed cloudinaryDestroyResponse
	if err := mJson.DecodeJSON(&destroyed, json.NewDecoder(resp.Body)); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	switch destroyed.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("unexpected destroy result %q", destroyed.Result)
	}
}
