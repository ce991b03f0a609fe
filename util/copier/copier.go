package copier

import (
	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"
)

// MustDeep returns deep copy of <inp>, panicking if copier fails
func MustDeep[T any](inp T) T {
	out, err := Deep(inp)
	if err != nil {
		panic(err)
	}
	return out
}

// Deep returns deep copy of <inp>
func Deep[T any](inp T) (out T, err error) {
	err = copier.CopyWithOption(&out, &inp, copier.Option{DeepCopy: true})
	err = errors.Wrap(err, "Deep copy")
	return
}
