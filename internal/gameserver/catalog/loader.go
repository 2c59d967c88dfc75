package catalog

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/sysmsg"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/typeutil"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/viper"
)

const (
	messagesKey = "messages"
	// 参数个数在线上只占一个字节。
	maxParams = 255
)

// Entry 是目录文件中的一条记录。
//
//	messages:
//	  - id: 1983
//	    name: S1
//	    params: 1
type Entry struct {
	ID     int32  `mapstructure:"id" json:"id"`
	Name   string `mapstructure:"name" json:"name"`
	Params int    `mapstructure:"params" json:"params"`
}

// Load 从 YAML 或 JSON 文件加载目录。文件中任意一条记录无效时不注册任何记录。
func (r *Registry) Load(path string) error {
	cfg := viper.New()
	if err := cfg.LoadFile(path); err != nil {
		return merr.WrapErrSysMsgCatalogLoad(path, err)
	}
	return r.load(path, cfg)
}

// LoadBytes 从内存中的 YAML 或 JSON 数据加载目录。
func (r *Registry) LoadBytes(data []byte, format string) error {
	cfg := viper.New()
	if err := cfg.LoadBytes(data, format); err != nil {
		return merr.WrapErrSysMsgCatalogLoad(format, err)
	}
	return r.load(format, cfg)
}

func (r *Registry) load(source string, cfg *viper.Config) error {
	var entries []Entry
	if err := cfg.UnmarshalKey(messagesKey, &entries); err != nil {
		return merr.WrapErrSysMsgCatalogLoad(source, err)
	}
	if err := validate(entries); err != nil {
		return err
	}

	ids := lo.Map(entries, func(e Entry, _ int) *sysmsg.MessageID {
		return sysmsg.NewMessageID(e.ID, e.Name, e.Params)
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if err := r.checkLocked(id); err != nil {
			return err
		}
	}
	for _, id := range ids {
		r.addLocked(id)
	}
	r.Logger().Info("system message catalog loaded",
		zap.String("source", source),
		zap.Int("messages", len(ids)),
		zap.Int("total", len(r.byID)))
	return nil
}

func validate(entries []Entry) error {
	seenIDs := typeutil.NewSet[int32]()
	seenNames := typeutil.NewSet[string]()
	var errs []error
	for _, e := range entries {
		if e.Params < 0 || e.Params > maxParams {
			errs = append(errs, merr.WrapErrParameterInvalidRange(0, maxParams, e.Params, "params of message "+e.Name))
		}
		if seenIDs.Contain(e.ID) {
			errs = append(errs, merr.WrapErrSysMsgDuplicated("id", e.ID))
		}
		seenIDs.Insert(e.ID)
		if e.Name == "" {
			continue
		}
		if seenNames.Contain(e.Name) {
			errs = append(errs, merr.WrapErrSysMsgDuplicated("name", e.Name))
		}
		seenNames.Insert(e.Name)
	}
	return merr.Combine(errs...)
}
