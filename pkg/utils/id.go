package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador público curto de uma loja
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateReference gera a referência pública de um lançamento do livro-caixa
func GenerateReference() (string, error) {
	id, err := gonanoid.Generate(characters, 10)
	if err != nil {
		return "", err
	}

	return "TX-" + id, nil
}
