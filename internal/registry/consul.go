// Package registry registers the service with Consul.
package registry

import (
	"fmt"

	"github.com/google/uuid"
	consulapi "github.com/hashicorp/consul/api"

	"github.com/vasapolrittideah/health-profile-api/internal/config"
)

// Register registers the service with the configured Consul agent using an
// HTTP health check against /health. The returned function deregisters the
// service and should be called on shutdown.
func Register(cfg *config.Config) (func() error, error) {
	client, err := consulapi.NewClient(&consulapi.Config{Address: cfg.ConsulAddr})
	if err != nil {
		return nil, err
	}

	serviceID := fmt.Sprintf("%s-%s", cfg.ServiceName, uuid.NewString())

	registration := &consulapi.AgentServiceRegistration{
		ID:      serviceID,
		Name:    cfg.ServiceName,
		Address: cfg.ServerHost,
		Port:    cfg.ServerPort,
		Check: &consulapi.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", cfg.ServerHost, cfg.ServerPort),
			Interval:                       "10s",
			Timeout:                        "2s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := client.Agent().ServiceRegister(registration); err != nil {
		return nil, err
	}

	return func() error {
		return client.Agent().ServiceDeregister(serviceID)
	}, nil
}
