package server

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adsmock/ads-api-mock/internal/config"
	"github.com/adsmock/ads-api-mock/internal/server/middlewares"
	"github.com/adsmock/ads-api-mock/pkg/certificates"
)

const (
	ProductionServer string = "prod"
	DevServer        string = "dev"
	apiV14           string = "/v14"
)

type Server struct {
	srv *http.Server
}

// NewServer builds the HTTP server. OAuth routes are registered at the root
// without authentication; the /v14 API group sits behind authMiddleware.
func NewServer(cfg *config.Configuration, authMiddleware gin.HandlerFunc, registerAPIFn, registerOAuthFn func(router *gin.RouterGroup)) (*Server, error) {
	gin.SetMode(gin.DebugMode)
	if cfg.Server.ServerMode == ProductionServer {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Server.HTTPPort),
		Handler: engine,
	}

	if cfg.Server.ServerMode == ProductionServer {
		cert, key, err := certificates.GenerateSelfSignedCertificate(time.Now().AddDate(1, 0, 0))
		if err != nil {
			return nil, fmt.Errorf("failed to generate server's certificates: %w", err)
		}

		tlsConfig, err := getTLSConfig(cert, key)
		if err != nil {
			return nil, err
		}

		srv.TLSConfig = tlsConfig
	}

	engine.Use(
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.S().Desugar(), true),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	registerOAuthFn(engine.Group("/"))

	router := engine.Group(apiV14)
	router.Use(authMiddleware)
	registerAPIFn(router)

	return &Server{srv: srv}, nil
}

// Start starts the HTTP or HTTPS server based on TLS configuration.
func (r *Server) Start(ctx context.Context) error {
	if r.srv.TLSConfig != nil {
		return r.srv.ListenAndServeTLS("", "")
	}
	return r.srv.ListenAndServe()
}

func (r *Server) Stop(ctx context.Context) {
	if err := r.srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("server shutdown", "error", err)
	}
}

func getTLSConfig(cert *x509.Certificate, privateKey *rsa.PrivateKey) (*tls.Config, error) {
	certPEM := new(bytes.Buffer)
	if err := pem.Encode(certPEM, &pem.Block{
		Type:  "CERTIFICATE",
		Bytes: cert.Raw,
	}); err != nil {
		return nil, err
	}

	privKeyPEM := new(bytes.Buffer)
	if err := pem.Encode(privKeyPEM, &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}); err != nil {
		return nil, err
	}

	serverCert, err := tls.X509KeyPair(certPEM.Bytes(), privKeyPEM.Bytes())
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{serverCert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
