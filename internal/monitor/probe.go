package monitor

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/segmentio/kafka-go"
)

const defaultProbeTimeout = 3 * time.Second

type dialFunc func(ctx context.Context, addr string) error

// Prober checks Kafka and Zookeeper reachability. The consumer is never probed:
// its status only comes from the pushed snapshot.
type Prober struct {
	kafkaAddr     string
	zookeeperAddr string
	timeout       time.Duration

	dialKafka     dialFunc
	dialZookeeper dialFunc
}

func NewProber(kafkaAddr, zookeeperAddr string, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Prober{
		kafkaAddr:     kafkaAddr,
		zookeeperAddr: zookeeperAddr,
		timeout:       timeout,
		dialKafka:     dialKafkaBroker,
		dialZookeeper: dialTCP,
	}
}

func (p *Prober) Probe(ctx context.Context, service string) (domain.ComponentStatus, bool) {
	switch service {
	case domain.ServiceKafka:
		if p.kafkaAddr == "" {
			return domain.ComponentStatus{}, false
		}
		return p.check(ctx, p.dialKafka, p.kafkaAddr, "Kafka broker"), true
	case domain.ServiceZookeeper:
		if p.zookeeperAddr == "" {
			return domain.ComponentStatus{}, false
		}
		return p.check(ctx, p.dialZookeeper, p.zookeeperAddr, "Zookeeper"), true
	}
	return domain.ComponentStatus{}, false
}

func (p *Prober) check(ctx context.Context, dial dialFunc, addr, name string) domain.ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := dial(ctx, addr); err != nil {
		return domain.ComponentStatus{
			Status:  domain.StatusStopped,
			Details: fmt.Sprintf("%s unreachable at %s: %v", name, addr, err),
		}
	}
	return domain.ComponentStatus{
		Status:  domain.StatusRunning,
		Details: fmt.Sprintf("%s reachable at %s", name, addr),
	}
}

func dialKafkaBroker(ctx context.Context, addr string) error {
	conn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Brokers()
	return err
}

func dialTCP(ctx context.Context, addr string) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return conn.Close()
}
