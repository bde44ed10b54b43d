// Package qrimage превращает QR-данные провайдеров в data URL для фронтенда.
package qrimage

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	pngPrefix = "data:image/png;base64,"
	size      = 256
)

// FromText рисует QR-код по строке (например, ссылке на оплату в кошельке).
func FromText(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("empty qr payload")
	}

	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	return pngPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// FromBase64 оборачивает уже готовую PNG-картинку в base64.
func FromBase64(b64 string) string {
	return pngPrefix + b64
}
