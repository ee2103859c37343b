// Package catalog реализует операции над каталогом треков поверх Store:
// выборку, публикацию, удаление и счетчик прослушиваний.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/hazadus/moltify/internal/identity"
	"github.com/hazadus/moltify/internal/query"
	"github.com/hazadus/moltify/internal/store"
	"github.com/hazadus/moltify/internal/submit"
	"github.com/hazadus/moltify/internal/track"
)

// AnonymousArtist имя исполнителя для треков без подтвержденной личности
const AnonymousArtist = "Anonymous Agent"

// Repository оркестрирует Store, выборку и проверку присылаемых треков.
// Все мутации проходят цикл load-mutate-save; перезапись документа целиком
// означает, что две одновременные мутации могут потерять одну из них,
// поэтому мутации сериализуются общим мьютексом. Чтения не блокируются.
type Repository struct {
	store        *store.Store
	resolver     identity.Resolver
	shareURLBase string
	mu           sync.Mutex
}

// NewRepository создает новый Repository
func NewRepository(st *store.Store, resolver identity.Resolver, shareURLBase string) *Repository {
	return &Repository{
		store:        st,
		resolver:     resolver,
		shareURLBase: shareURLBase,
	}
}

// List возвращает треки каталога с фильтром по жанру, сортировкой
// и ограничением размера результата. Ничего не изменяет и не сохраняет.
func (r *Repository) List(genre string, sortMode string, limit int) query.Result {
	tracks := r.store.Load()
	return query.Select(tracks, track.Genre(genre), sortMode, limit)
}

// Get возвращает трек по ID
func (r *Repository) Get(id string) (*track.Track, error) {
	tracks := r.store.Load()
	for i := range tracks {
		if tracks[i].ID == id {
			return &tracks[i], nil
		}
	}
	return nil, newError(KindNotFound, "Track not found")
}

// Create проверяет присланный трек и публикует его в каталоге.
// Токен необязателен: без токена трек публикуется анонимно, с токеном
// личность всегда подтверждается через Moltbook — неподтвержденный токен
// отвергается независимо от его вида.
func (r *Repository) Create(ctx context.Context, sub submit.Submission, token string) (*track.Public, error) {
	artist := strings.TrimSpace(sub.Artist)
	artistID := ""

	if token != "" {
		agent, err := r.resolver.Resolve(ctx, token)
		if err != nil {
			return nil, wrapError(KindAuth, "Invalid Moltbook API key", err)
		}
		artist = agent.Name
		artistID = agent.ID
	} else if artist == "" {
		artist = AnonymousArtist
	}

	if err := submit.Validate(sub); err != nil {
		return nil, newError(KindValidation, err.Error())
	}

	newTrack := submit.BuildTrack(sub, artist, artistID)

	r.mu.Lock()
	defer r.mu.Unlock()

	tracks := r.store.Load()
	tracks = append(tracks, newTrack)
	if err := r.store.Save(tracks); err != nil {
		return nil, wrapError(KindStorage, "Failed to save track", err)
	}

	return &track.Public{
		ID:     newTrack.ID,
		Title:  newTrack.Title,
		Artist: newTrack.Artist,
		Genre:  newTrack.Genre,
		URL:    r.shareURLBase + newTrack.ID,
	}, nil
}

// Delete удаляет трек по ID. Токен обязателен, удалить трек может только
// его автор. Анонимные треки не принадлежат никому и не удаляются.
func (r *Repository) Delete(ctx context.Context, id string, token string) error {
	if token == "" {
		return newError(KindAuth, "Authentication required")
	}

	agent, err := r.resolver.Resolve(ctx, token)
	if err != nil {
		return wrapError(KindAuth, "Invalid Moltbook API key", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tracks := r.store.Load()
	idx := -1
	for i := range tracks {
		if tracks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return newError(KindNotFound, "Track not found")
	}
	if tracks[idx].ArtistID == "" || tracks[idx].ArtistID != agent.ID {
		return newError(KindOwnership, "Not your track")
	}

	tracks = append(tracks[:idx], tracks[idx+1:]...)
	if err := r.store.Save(tracks); err != nil {
		return wrapError(KindStorage, "Failed to delete track", err)
	}
	return nil
}

// IncrementPlay увеличивает счетчик прослушиваний трека ровно на единицу
// и возвращает новое значение. Аутентификация не требуется.
func (r *Repository) IncrementPlay(id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracks := r.store.Load()
	for i := range tracks {
		if tracks[i].ID == id {
			tracks[i].Plays++
			if err := r.store.Save(tracks); err != nil {
				return 0, wrapError(KindStorage, "Failed to update play count", err)
			}
			return tracks[i].Plays, nil
		}
	}
	return 0, newError(KindNotFound, "Not found")
}
