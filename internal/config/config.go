package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）

	WhatsAppNumber string // チェックアウト連絡先（国番号込み、記号なし）

	UploadDir       string // 商品画像の保存先
	UploadPublicURL string // 画像配信のURLプレフィックス
}

// Loadは環境変数から設定を読み込む
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: getenv("FE_URL", "http://localhost:5173"),

		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "917715808527"),

		UploadDir:       getenv("UPLOAD_DIR", "./uploads"),
		UploadPublicURL: getenv("UPLOAD_PUBLIC_URL", "/uploads"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.WhatsAppNumber == "" {
		return Config{}, fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
