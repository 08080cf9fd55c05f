package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciales struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// obtenerCredenciales resuelve usuario y clave de la base: primero por
// variables de entorno (desarrollo local), si no desde AWS Secrets
// Manager con el secretID configurado.
func obtenerCredenciales(secretID string) (string, string, error) {
	usuario := os.Getenv("DB_USERNAME")
	clave := os.Getenv("DB_PASSWORD")
	if usuario != "" && clave != "" {
		return usuario, clave, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", fmt.Errorf("error al cargar configuración AWS: %w", err)
	}

	cliente := secretsmanager.NewFromConfig(cfg)
	salida, err := cliente.GetSecretValue(context.TODO(), &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("error al leer el secreto %s: %w", secretID, err)
	}

	var cred credenciales
	if err := json.Unmarshal([]byte(*salida.SecretString), &cred); err != nil {
		return "", "", fmt.Errorf("secreto %s con formato inválido: %w", secretID, err)
	}

	return cred.Username, cred.Password, nil
}
