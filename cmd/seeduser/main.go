// cmd/seeduser/main.go — cria/atualiza o usuário administrador de demonstração.
// Uso: go run ./cmd/seeduser
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/misterzhermit/URSTORE/internal/infra"
	"github.com/misterzhermit/URSTORE/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "urstore.db"
	}
	username := "admin"
	password := "1234"
	nome := "Admin Demo"
	papel := "administrador"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	ctx := context.Background()
	var user model.Usuario
	err = db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.Usuario{
			Username:     username,
			Nome:         nome,
			PasswordHash: string(hash),
			Papel:        papel,
			Ativo:        true,
		}
		err = db.WithContext(ctx).Create(&user).Error
	case err == nil:
		user.Nome = nome
		user.PasswordHash = string(hash)
		user.Papel = papel
		user.Ativo = true
		err = db.WithContext(ctx).Save(&user).Error
	}
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}
	fmt.Printf("✅ Usuário '%s' criado/atualizado com senha '%s'\n", username, password)
}
