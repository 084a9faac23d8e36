package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hermanar_backend/internals/configs"
	cuotaModel "hermanar_backend/internals/features/cuotas/model"
	familiaModel "hermanar_backend/internals/features/familias/model"
	hermanoModel "hermanar_backend/internals/features/hermanos/model"
	userModel "hermanar_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hermanar&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer en transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a la base de datos: %v", err)
	}

	DB = db
	log.Println("✅ Conexión a PostgreSQL establecida")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] No se pudo obtener el pool de conexiones: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate crea las tablas si no existen. El orden importa por las FK.
func Migrate() {
	if err := DB.AutoMigrate(
		&familiaModel.FamiliaModel{},
		&hermanoModel.HermanoModel{},
		&cuotaModel.CuotaModel{},
		&userModel.UsuarioModel{},
	); err != nil {
		log.Fatalf("❌ Error en la migración: %v", err)
	}
	log.Println("✅ Migraciones aplicadas")
}
