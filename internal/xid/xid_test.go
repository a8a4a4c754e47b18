package xid_test

import (
	"strings"
	"testing"

	"github.com/jhoicas/mm-inventario/internal/xid"
	"github.com/stretchr/testify/assert"
)

func TestNew_PrefijoYUnicidad(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := xid.New(xid.PrefixProduct)
		assert.True(t, strings.HasPrefix(id, "prd_"), "id %q sin prefijo", id)
		_, dup := seen[id]
		assert.False(t, dup, "id repetido: %s", id)
		seen[id] = struct{}{}
	}
}
