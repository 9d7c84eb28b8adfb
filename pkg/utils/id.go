package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// VersionIDSize é o tamanho dos identificadores de versão do dataset
const VersionIDSize = 12

func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}

func GenerateVersionID() (string, error) {
	return GenerateID(VersionIDSize)
}
