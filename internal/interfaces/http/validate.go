package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida para los bodies de los CRUD.
// El procesador de transferencias y el módulo de alertas validan a mano
// porque sus reglas tienen orden y mensajes fijos.
var validate = validator.New()
