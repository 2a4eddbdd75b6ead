package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/MiNegocio-api/pkg/config"
)

const (
	// Una sola tienda: pocas conexiones bastan y no agotan el plan gratuito del proveedor.
	maxConns     = 8
	minConns     = 1
	dialTimeout  = 5 * time.Second
	publicDNS    = "8.8.8.8:53"
	appNameParam = "application_name"
)

var errNoIPv4 = errors.New("sin dirección IPv4")

// NewPool abre el pool de PostgreSQL, registra el codec NUMERIC -> decimal.Decimal y hace ping.
// El host se resuelve a IPv4 cuando se puede: dentro de Docker suele no haber ruta IPv6
// y algunos proveedores gestionados publican solo registros AAAA en su DNS por defecto.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(preferIPv4(ctx, cfg))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 15 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.RuntimeParams[appNameParam] = "mi-negocio-api"
	poolConfig.ConnConfig.DialFunc = dialIPv4
	poolConfig.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// preferIPv4 devuelve el DSN con el host ya traducido a IPv4; si no hay IPv4 lo deja igual.
func preferIPv4(ctx context.Context, cfg config.DBConfig) string {
	if cfg.DatabaseURL == "" {
		if ip, err := lookupIPv4(ctx, cfg.Host); err == nil {
			cfg.Host = ip
		}
		return cfg.DSN()
	}

	u, err := url.Parse(cfg.DatabaseURL)
	if err != nil {
		return cfg.DatabaseURL
	}
	ip, err := lookupIPv4(ctx, u.Hostname())
	if err != nil {
		return cfg.DatabaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	u.Host = net.JoinHostPort(ip, port)
	return u.String()
}

// dialIPv4 marca por tcp4 cuando el host tiene IPv4; si no, deja que el sistema elija.
func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	d := &net.Dialer{Timeout: dialTimeout}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ip, err := lookupIPv4(ctx, host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
}

// lookupIPv4 consulta primero el resolver del sistema y después un DNS público.
func lookupIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", errNoIPv4
	}
	public := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", publicDNS)
		},
	}
	for _, r := range []*net.Resolver{net.DefaultResolver, public} {
		ips, err := r.LookupIP(ctx, "ip4", host)
		if err != nil {
			continue
		}
		for _, ip := range ips {
			if v4 := ip.To4(); v4 != nil {
				return v4.String(), nil
			}
		}
	}
	return "", fmt.Errorf("%s: %w", host, errNoIPv4)
}
