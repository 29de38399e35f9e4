package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// pathID lee el parámetro :id. Un id no numérico no resuelve a ningún registro,
// así que se responde NotFound con el valor crudo.
func pathID(c *fiber.Ctx, entity string) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewNotFound(entity, raw)
	}
	return id, nil
}

// queryParam devuelve nil si el parámetro no llegó en la query string.
func queryParam(c *fiber.Ctx, key string) *string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}

// optionalID interpreta un parámetro de query como id; nil si falta o está en blanco.
func optionalID(c *fiber.Ctx, key, entity string) (*int64, error) {
	raw := queryParam(c, key)
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(strings.TrimSpace(*raw), 10, 64)
	if err != nil {
		return nil, domain.NewNotFound(entity, *raw)
	}
	return &id, nil
}
