package service

import (
	"context"

	"github.com/IPampurin/LinkManager/pkg/cache"
	"github.com/IPampurin/LinkManager/pkg/db"
)

type Service struct {
	link  db.LinkMethods
	cache cache.CacheMethods
}

func InitService(ctx context.Context, storage *db.DataBase, cache *cache.Cache) *Service {

	svc := &Service{
		link: storage, // *db.DataBase реализует LinkMethods
	}

	// nil-указатель кэша не заворачиваем в интерфейс,
	// иначе проверка s.cache != nil перестаёт отсекать отсутствующий кэш
	if cache != nil {
		svc.cache = cache
	}

	return svc
}
