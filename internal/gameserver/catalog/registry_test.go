package catalog

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/sysmsg"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
)

const catalogYAML = `
messages:
  - id: 0
    name: YOU_HAVE_BEEN_DISCONNECTED
    params: 0
  - id: 1983
    name: S1
    params: 1
  - id: 2
    name: WELCOME_TO_THE_WORLD
    params: 0
  - id: 1867
    name: S1_HAS_BEEN_BLOCKED_FROM_CHATTING
    params: 1
`

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	id := sysmsg.NewMessageID(46, "S1_HAS_GAINED_S2", 2)
	require.NoError(t, r.Register(id))

	got, err := r.Get(46)
	require.NoError(t, err)
	assert.Same(t, id, got)

	got, err = r.ByName("S1_HAS_GAINED_S2")
	require.NoError(t, err)
	assert.Same(t, id, got)

	_, err = r.Get(47)
	assert.True(t, errors.Is(err, merr.ErrSysMsgNotFound))
	_, err = r.ByName("missing")
	assert.True(t, errors.Is(err, merr.ErrSysMsgNotFound))
	assert.Equal(t, 1, r.Len())
}

func TestRegisterDuplicated(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(sysmsg.NewMessageID(1, "A", 0)))

	err := r.Register(sysmsg.NewMessageID(1, "B", 0))
	assert.True(t, errors.Is(err, merr.ErrSysMsgDuplicated))
	err = r.Register(sysmsg.NewMessageID(2, "A", 0))
	assert.True(t, errors.Is(err, merr.ErrSysMsgDuplicated))

	// 无名称的消息不参与名称索引。
	require.NoError(t, r.Register(sysmsg.NewMessageID(3, "", 0)))
	require.NoError(t, r.Register(sysmsg.NewMessageID(4, "", 0)))

	err = r.Register(nil)
	assert.True(t, errors.Is(err, merr.ErrSysMsgIDMissing))
	assert.Equal(t, 3, r.Len())
}

func TestLoadBytes(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.LoadBytes([]byte(catalogYAML), "yaml"))

	assert.Equal(t, 4, r.Len())
	s1, err := r.ByName("S1")
	require.NoError(t, err)
	assert.Equal(t, int32(1983), s1.ID())
	assert.Equal(t, 1, s1.ParamCount())

	ids := make([]int32, 0, r.Len())
	for _, id := range r.All() {
		ids = append(ids, id.ID())
	}
	assert.Equal(t, []int32{0, 2, 1867, 1983}, ids)
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "systemmessages.json")
	data := `{"messages": [{"id": 7, "name": "S1_S2", "params": 2}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	r := NewRegistry()
	require.NoError(t, r.Load(path))
	id, err := r.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "S1_S2", id.Name())
	assert.Equal(t, 2, id.ParamCount())
}

func TestLoadMissingFile(t *testing.T) {
	r := NewRegistry()
	err := r.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, merr.ErrSysMsgCatalogLoad))
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	data := `
messages:
  - id: 1
    name: A
    params: 1
  - id: 1
    name: B
    params: -1
  - id: 2
    name: A
    params: 0
`
	r := NewRegistry()
	err := r.LoadBytes([]byte(data), "yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, merr.ErrSysMsgDuplicated))
	assert.True(t, errors.Is(err, merr.ErrParameterInvalid))
	assert.Equal(t, 0, r.Len())
}

func TestLoadConflictsWithRegistered(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(sysmsg.NewMessageID(1983, "", 1)))

	err := r.LoadBytes([]byte(catalogYAML), "yaml")
	assert.True(t, errors.Is(err, merr.ErrSysMsgDuplicated))
	assert.Equal(t, 1, r.Len())
}

type probe struct {
	sysmsg.Message[*probe]
}

func TestDrifted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.LoadBytes([]byte(catalogYAML), "yaml"))
	assert.Empty(t, r.Drifted())

	welcome, err := r.Get(2)
	require.NoError(t, err)
	s1, err := r.Get(1983)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := &probe{}
			if p.Init(p, welcome) != nil {
				return
			}
			p.AddString("a").AddString("b")
		}()
	}
	wg.Wait()

	p := &probe{}
	require.NoError(t, p.Init(p, s1))
	p.AddString("only one")

	drifts := r.Drifted()
	require.Len(t, drifts, 1)
	assert.Same(t, welcome, drifts[0].ID)
	assert.Equal(t, 0, drifts[0].Registered)
	assert.Equal(t, 2, drifts[0].Current)
}
