package catalog

import (
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/sysmsg"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/log"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
)

// Registry 保存进程内全部系统消息身份，按 ID 和名称索引，可并发访问。
type Registry struct {
	log.Binder

	mu     sync.RWMutex
	byID   map[int32]*sysmsg.MessageID
	byName map[string]*sysmsg.MessageID
	// 注册时声明的参数个数，用于发现编码过程中被修正的条目。
	registered map[int32]int
}

// Drift 描述一条声明参数个数在注册后被修正的消息。
type Drift struct {
	ID         *sysmsg.MessageID
	Registered int
	Current    int
}

func NewRegistry() *Registry {
	r := &Registry{
		byID:       make(map[int32]*sysmsg.MessageID),
		byName:     make(map[string]*sysmsg.MessageID),
		registered: make(map[int32]int),
	}
	r.SetFields(log.FieldModule("catalog"))
	return r
}

// Register 注册一条消息身份，ID 或非空名称重复时返回 ErrSysMsgDuplicated。
func (r *Registry) Register(id *sysmsg.MessageID) error {
	if id == nil {
		return merr.WrapErrSysMsgIDMissing("register")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkLocked(id); err != nil {
		return err
	}
	r.addLocked(id)
	return nil
}

func (r *Registry) checkLocked(id *sysmsg.MessageID) error {
	if _, ok := r.byID[id.ID()]; ok {
		return merr.WrapErrSysMsgDuplicated("id", id.ID())
	}
	if id.Name() != "" {
		if _, ok := r.byName[id.Name()]; ok {
			return merr.WrapErrSysMsgDuplicated("name", id.Name())
		}
	}
	return nil
}

func (r *Registry) addLocked(id *sysmsg.MessageID) {
	r.byID[id.ID()] = id
	if id.Name() != "" {
		r.byName[id.Name()] = id
	}
	r.registered[id.ID()] = id.ParamCount()
}

// Get 按 ID 查找消息身份。
func (r *Registry) Get(id int32) (*sysmsg.MessageID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, merr.WrapErrSysMsgNotFound(id)
	}
	return m, nil
}

// ByName 按名称查找消息身份。
func (r *Registry) ByName(name string) (*sysmsg.MessageID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[name]
	if !ok {
		return nil, merr.WrapErrSysMsgNotFound(name)
	}
	return m, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// All 返回全部消息身份，按 ID 升序。
func (r *Registry) All() []*sysmsg.MessageID {
	r.mu.RLock()
	ids := lo.Values(r.byID)
	r.mu.RUnlock()
	slices.SortFunc(ids, byID)
	return ids
}

// Drifted 返回声明参数个数大于注册时个数的消息，按 ID 升序。
func (r *Registry) Drifted() []Drift {
	r.mu.RLock()
	drifts := lo.FilterMap(lo.Values(r.byID), func(id *sysmsg.MessageID, _ int) (Drift, bool) {
		registered := r.registered[id.ID()]
		return Drift{ID: id, Registered: registered, Current: id.ParamCount()}, id.ParamCount() > registered
	})
	r.mu.RUnlock()
	slices.SortFunc(drifts, func(a, b Drift) int { return byID(a.ID, b.ID) })
	for _, d := range drifts {
		r.Logger().Debug("system message param count drifted",
			log.FieldMessageID(d.ID.ID()),
			zap.Int("registered", d.Registered),
			zap.Int("current", d.Current))
	}
	return drifts
}

func byID(a, b *sysmsg.MessageID) int {
	return int(a.ID()) - int(b.ID())
}
