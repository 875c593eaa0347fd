package postgres

import (
	"testing"

	"cardapio/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	t.Parallel()

	t.Run("unique violations", func(t *testing.T) {
		t.Parallel()

		assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
		assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "restaurantes_identificador_url_key" (SQLSTATE 23505)`)))
		assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
		assert.False(t, isUniqueConstraintViolation(nil))
	})

	t.Run("foreign key violations", func(t *testing.T) {
		t.Parallel()

		assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
		assert.True(t, isForeignKeyConstraintViolation(errors.New(`ERROR: update or delete on table "categorias" violates foreign key constraint "produtos_categoria_id_fkey" (SQLSTATE 23503)`)))
		assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("check violations", func(t *testing.T) {
		t.Parallel()

		assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
		assert.True(t, isCheckConstraintViolation(errors.New(`ERROR: new row for relation "promocoes" violates check constraint "promocoes_tipo_promocao_check" (SQLSTATE 23514)`)))
		assert.False(t, isCheckConstraintViolation(errors.New("SQLSTATE 23505")))
	})
}
