package mqtt

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// DialConfig describes the broker connection for [Dial].
type DialConfig struct {
	BrokerURL      string // e.g. "tcp://broker.local:1883"
	ClientID       string
	Username       string
	Password       string
	ConnectTimeout time.Duration
	Logger         *slog.Logger
}

// Dial connects a paho client with auto-reconnect enabled and connection
// lifecycle logging. The returned client satisfies [Client] and can be handed
// directly to [NewBackend].
func Dial(cfg DialConfig) (paho.Client, error) {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetMaxReconnectInterval(30 * time.Second)

	opts.OnConnect = func(paho.Client) {
		logger.Info("mqtt connection established",
			"broker", cfg.BrokerURL,
			"client_id", cfg.ClientID)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		logger.Warn("mqtt connection lost, will auto-reconnect",
			"broker", cfg.BrokerURL,
			"error", err)
	}

	client := paho.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(cfg.ConnectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s: timeout", cfg.BrokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", cfg.BrokerURL, err)
	}

	return client, nil
}
