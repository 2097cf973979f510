//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"couponhub/cmd/bootstrap"
	"couponhub/cmd/bootstrap/components"
	"couponhub/internal/infra/db"
	"couponhub/internal/pkg/config"
	"couponhub/internal/usecase"
	"couponhub/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	mongoContainerOnce sync.Once
	mongoTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-process database preparation
// ------------------------------------------------------------

// StartPostgres creates a fresh database inside the shared postgres:17
// container and applies the embedded schema.
func StartPostgres(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container address")

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to connect as postgres admin")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			waitTime := min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second)
			slog.Warn("retrying test database creation", "attempt", attempts+1, "error", createErr.Error(), "retry_wait", waitTime)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}

	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.Migrate(ctx, pool), "failed to apply schema")

	t.Cleanup(func() {
		closePool()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for test database cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return pool, dbConfig
}

// StartMongo returns a uniquely named database on the shared mongo:7 container.
func StartMongo(t *testing.T) (*mongo.Database, config.MongoConfig) {
	t.Helper()
	startMongoContainerOnce(t)

	mongoInfo, err := getContainerHostPort(mongoTestContainer, "27017/tcp")
	require.NoError(t, err, "failed to read mongo container address")

	mongoConfig := config.MongoConfig{
		URI:      fmt.Sprintf("mongodb://%s:%s", mongoInfo.Host, mongoInfo.Port.Port()),
		Database: "couponhub_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
	}

	database, disconnect, err := db.ConnectMongo(mongoConfig)
	require.NoError(t, err, "failed to connect to mongo")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Drop(ctx); err != nil {
			slog.Warn("failed to drop mongo test database", "database", mongoConfig.Database, "error", err.Error())
		}
		disconnect()
	})

	return database, mongoConfig
}

// ------------------------------------------------------------
// fx application for HTTP-level tests
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config, handles *db.Handles) (*gin.Engine, usecase.AdminRepository, *fx.App) {
	var (
		router    *gin.Engine
		adminRepo usecase.AdminRepository
	)

	app := fx.New(
		fx.Provide(
			func() config.Config { return cfg },
			func() *db.Handles { return handles },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &adminRepo),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, adminRepo, app
}

// ------------------------------------------------------------
// Container lifecycle
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")
	})
	require.NotNil(t, postgresTestContainer, "postgres container is not running")
}

func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			Tmpfs: map[string]string{
				"/data/db": "rw,size=256m",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("Waiting for connections"),
				wait.ForListeningPort("27017/tcp"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		mongoTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start mongo container")
	})
	require.NotNil(t, mongoTestContainer, "mongo container is not running")
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite for HTTP end-to-end tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Driver    string
	Router    *gin.Engine
	DB        *pgxpool.Pool
	Mongo     *mongo.Database
	AdminRepo usecase.AdminRepository
	Config    config.Config
}

// ConfigOverride lets a suite tweak the config before the app is built.
type ConfigOverride func(*config.Config)

func (s *SharedSuite) SetupSharedSuite(t *testing.T, overrides ...ConfigOverride) {
	gin.SetMode(gin.TestMode)

	if s.Driver == "" {
		s.Driver = config.StoreDriverPostgres
	}

	cfg := config.NewTestConfig()
	cfg.Store.Driver = s.Driver
	for _, o := range overrides {
		o(&cfg)
	}

	handles := &db.Handles{Driver: s.Driver}
	switch s.Driver {
	case config.StoreDriverPostgres:
		s.DB, cfg.DB = StartPostgres(t)
		handles.Pool = s.DB
	case config.StoreDriverMongo:
		s.Mongo, cfg.Mongo = StartMongo(t)
		handles.Mongo = s.Mongo
	}

	router, adminRepo, app := buildE2EApp(cfg, handles)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	s.Router = router
	s.AdminRepo = adminRepo
	s.Config = cfg
	require.NotNil(t, s.Router, "router was not built")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// SetupSubTest empties the backing store so every subtest starts clean.
func (s *SharedSuite) SetupSubTest() {
	s.ResetStore()
}

func (s *SharedSuite) ResetStore() {
	switch {
	case s.DB != nil:
		require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset postgres")
	case s.Mongo != nil:
		require.NoError(s.T(), dbtest.ResetMongo(s.Mongo), "failed to reset mongo")
	}
}
