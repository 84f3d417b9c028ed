package repositories

import "gorm.io/gorm"

type Tabler interface {
	TableName() string
}

// GormRepository implements the CRUD surface shared by all entity
// repositories. Entities are keyed by integer identifiers.
type GormRepository[T Tabler] struct {
	db *gorm.DB
}

func newGormRepository[T Tabler](db *gorm.DB) GormRepository[T] {
	return GormRepository[T]{db: db}
}

// GetDB returns tx when a transaction is in flight, the base handle
// otherwise.
func (g GormRepository[T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

func (g GormRepository[T]) All() ([]T, error) {
	var ts []T
	err := g.db.Find(&ts).Error
	return ts, err
}

func (g GormRepository[T]) Read(id int) (T, error) {
	var t T
	err := g.db.First(&t, id).Error
	return t, err
}

func (g GormRepository[T]) Create(t *T) error {
	return g.db.Create(t).Error
}

func (g GormRepository[T]) Save(t *T) error {
	return g.db.Save(t).Error
}

func (g GormRepository[T]) Delete(t *T) error {
	return g.db.Delete(t).Error
}
