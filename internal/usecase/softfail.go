package usecase

import (
	"github.com/mikiasgoitom/folio/internal/domain/entity"
	"github.com/mikiasgoitom/folio/internal/domain/result"
	"github.com/mikiasgoitom/folio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

// Every failure an action absorbs passes through softFail. The default for
// each action is fixed here:
//
//	get_likes, add_like, remove_like  -> 0
//	get_comments                      -> empty list
//	add_comment                       -> nil
func softFail[T any](logger usecasecontract.IAppLogger, action, slug string, r result.Result[T], def T) T {
	if r.OK() {
		return r.Value
	}
	metrics.EngagementSoftFailures.WithLabelValues(action, r.Kind.String()).Inc()
	switch r.Kind {
	case result.KindConfig:
		logger.Errorf("%s %q: engagement store is not configured: %v", action, slug, r.Err)
	case result.KindValidation:
		logger.Debugf("%s %q: rejected input: %v", action, slug, r.Err)
	case result.KindInternal:
		logger.Errorf("%s %q: %v", action, slug, r.Err)
	default:
		logger.Warnf("%s %q: %s store failure: %v", action, slug, r.Kind, r.Err)
	}
	return def
}

func (u *EngagementUsecase) likesFallback(action, slug string, r result.Result[int64]) int64 {
	return softFail(u.logger, action, slug, r, 0)
}

func (u *EngagementUsecase) commentsFallback(action, slug string, r result.Result[[]entity.Comment]) []entity.Comment {
	return softFail(u.logger, action, slug, r, []entity.Comment{})
}

func (u *EngagementUsecase) commentFallback(slug string, kind result.Kind, err error) *entity.Comment {
	return softFail[*entity.Comment](u.logger, actionAddComment, slug, result.Fail[*entity.Comment](kind, err), nil)
}
