package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lacquer/config"
	"lacquer/utils"

	"go.uber.org/zap"
)

const siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// HumanVerifier gates public booking submissions.
type HumanVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// RecaptchaVerifier validates tokens against Google's siteverify endpoint.
// With no secret configured it passes everything through, so development
// environments work without a reCAPTCHA account.
type RecaptchaVerifier struct {
	Client *http.Client
	// Secret overrides the configured RECAPTCHA_SECRET_KEY when non-empty.
	Secret string
}

func NewRecaptchaVerifier() *RecaptchaVerifier {
	return &RecaptchaVerifier{
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *RecaptchaVerifier) secret() string {
	if v.Secret != "" {
		return v.Secret
	}
	return config.AppConfig.RecaptchaSecretKey
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, token string) (bool, error) {
	secret := v.secret()
	if secret == "" {
		utils.GetLogger().Warn("RECAPTCHA_SECRET_KEY not configured, allowing submission")
		return true, nil
	}

	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, siteVerifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		utils.GetLogger().Error("reCAPTCHA verification request failed", zap.Error(err))
		return false, err
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}
	return body.Success, nil
}
