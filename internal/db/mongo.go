package db

import (
	"context"
	"time"

	"cinemadb-api/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("[mongo] error conectando", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("[mongo] ping falló", zap.Error(err))
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	logger.Info("[mongo] conectado", zap.String("db", cfg.MongoDB))
}

func DB() *mongo.Database {
	return mongoDB
}
