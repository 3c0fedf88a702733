package mqtt

import (
	"context"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/iwtcode/slideService/internal/config"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
)

const (
	connectTimeout = 5 * time.Second
	publishTimeout = 2 * time.Second
)

// MQTTProducer публикует сообщения в топик MQTT-брокера.
// Ключ сообщения добавляется к топику: <topic>/<key>.
type MQTTProducer struct {
	client pahomqtt.Client
	topic  string
	qos    byte
}

// NewMQTTProducer подключается к брокеру. Если MQTT выключен, возвращается nil.
func NewMQTTProducer(cfg *config.AppConfig, logger *logging.Logger) (interfaces.MessageProducer, error) {
	if !cfg.MQTT.Enable {
		logger.Info("MQTT producer disabled")
		return nil, nil
	}
	log := logger.WithPrefix("MQTT")

	clientID := cfg.MQTT.ClientID
	if clientID == "" {
		clientID = "slide-service-" + uuid.New().String()[:8]
	}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.MQTT.Broker))
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.OnConnect = func(c pahomqtt.Client) {
		log.Info("MQTT connection established", "broker", cfg.MQTT.Broker, "client_id", clientID)
	}
	opts.OnConnectionLost = func(c pahomqtt.Client, err error) {
		log.Warn("MQTT connection lost, will auto-reconnect", "broker", cfg.MQTT.Broker, "error", err)
	}

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("таймаут подключения к MQTT брокеру %s", cfg.MQTT.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("не удалось подключиться к MQTT брокеру %s: %w", cfg.MQTT.Broker, err)
	}

	return &MQTTProducer{
		client: client,
		topic:  cfg.MQTT.Topic,
		qos:    byte(cfg.MQTT.QoS),
	}, nil
}

// Produce публикует сообщение и ждет подтверждения не дольше publishTimeout или ctx.
func (p *MQTTProducer) Produce(ctx context.Context, key, value []byte) error {
	topic := p.topic
	if len(key) > 0 {
		topic = topic + "/" + string(key)
	}

	token := p.client.Publish(topic, p.qos, false, value)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return fmt.Errorf("таймаут публикации в топик %s", topic)
	}
	return token.Error()
}

func (p *MQTTProducer) Close() error {
	p.client.Disconnect(250)
	return nil
}
