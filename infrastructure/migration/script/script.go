package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/aurelion-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/aurelion-dashboard-api/internal/config"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/log"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/middleware"
	"golang.org/x/crypto/bcrypt"
)

// schema segue a ordem das chaves estrangeiras
var schema = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id   INTEGER PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          VARCHAR(100) NOT NULL,
		lastname      VARCHAR(100) NOT NULL DEFAULT '',
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		role_id       INTEGER NOT NULL REFERENCES roles (id),
		created_at    TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS clientes (
		id_cliente     INTEGER PRIMARY KEY,
		nombre_cliente VARCHAR(150),
		email          VARCHAR(255),
		ciudad         VARCHAR(100),
		fecha_alta     DATE
	)`,
	`CREATE TABLE IF NOT EXISTS productos (
		id_producto     INTEGER PRIMARY KEY,
		nombre_producto VARCHAR(150) NOT NULL,
		categoria       VARCHAR(100),
		precio_unitario NUMERIC(12, 2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS ventas (
		id_venta       INTEGER PRIMARY KEY,
		fecha          DATE NOT NULL,
		id_cliente     INTEGER NOT NULL REFERENCES clientes (id_cliente),
		nombre_cliente VARCHAR(150),
		email          VARCHAR(255),
		medio_pago     VARCHAR(50)
	)`,
	`CREATE TABLE IF NOT EXISTS detalles_ventas (
		id_venta        INTEGER NOT NULL REFERENCES ventas (id_venta),
		id_producto     INTEGER NOT NULL REFERENCES productos (id_producto),
		nombre_producto VARCHAR(150),
		cantidad        INTEGER NOT NULL,
		precio_unitario NUMERIC(12, 2) NOT NULL,
		importe         NUMERIC(12, 2) NOT NULL,
		PRIMARY KEY (id_venta, id_producto)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clientes_ciudad ON clientes (ciudad)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_categoria ON productos (categoria)`,
}

var roles = map[int]string{
	middleware.RoleAdmin:      "admin",
	middleware.RoleSupervisor: "supervisor",
	middleware.RoleViewer:     "viewer",
}

func main() {
	adminEmail := flag.String("admin-email", "admin@aurelion.com", "email do administrador inicial")
	adminName := flag.String("admin-name", "Admin", "nome do administrador inicial")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		logrus.Fatal("ADMIN_PASSWORD é obrigatório para criar o administrador inicial")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if err := seedRoles(ctx, tx); err != nil {
			return err
		}
		return seedAdmin(ctx, tx, *adminName, *adminEmail, adminPassword)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração abortada")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída")
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for i, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao executar o comando %d do schema: %w", i+1, err)
		}
	}
	logrus.WithField("statements", len(schema)).Info("Schema criado")
	return nil
}

func seedRoles(ctx context.Context, tx *sql.Tx) error {
	builder := squirrel.
		Insert("roles").
		Columns("id", "name").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, id := range []int{middleware.RoleAdmin, middleware.RoleSupervisor, middleware.RoleViewer} {
		builder = builder.Values(id, roles[id])
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a inserção de roles: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir roles: %w", err)
	}
	return nil
}

func seedAdmin(ctx context.Context, tx *sql.Tx, name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	query, args, err := squirrel.
		Insert("users").
		Columns("name", "email", "password_hash", "active", "role_id").
		Values(name, email, string(hash), true, middleware.RoleAdmin).
		Suffix("ON CONFLICT (email) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a inserção do administrador: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir administrador: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		logrus.WithField("email", email).Info("Administrador já existia, nada a fazer")
		return nil
	}

	logrus.WithField("email", email).Info("Administrador criado")
	return nil
}
