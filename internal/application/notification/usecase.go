// Package notification avisos in-app: escaneo de stock bajo, listado por
// usuario y contador de no leídas.
package notification

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/report"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/logger"
)

const (
	scanThrottleKey = "scan:low_stock"
	unreadKeyPrefix = "notif:unread:"
	unreadCountTTL  = 30 * time.Second
)

// Cache puerto de caché para el contador de no leídas (cache-aside con
// invalidación al marcar como leída). Get devuelve (nil, nil) en miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Throttle candado distribuido de expiración automática (SET NX EX). Acquire
// devuelve false si otro proceso lo tomó dentro de la ventana.
type Throttle interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// UseCase gestiona notificaciones. cache y throttle pueden ser nil: sin
// Redis el contador se consulta siempre y el escaneo se limita en memoria.
type UseCase struct {
	notifRepo  repository.NotificationRepository
	reportRepo repository.ReportRepository
	cache      Cache
	throttle   Throttle
	log        *logger.Logger
	listLimit  int
	scanEvery  time.Duration

	// Fallback cuando no hay throttle distribuido. El middleware dispara el
	// escaneo en goroutines, así que la ventana local va bajo candado.
	mu            sync.Mutex
	lastLocalScan time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	notifRepo repository.NotificationRepository,
	reportRepo repository.ReportRepository,
	cache Cache,
	throttle Throttle,
	log *logger.Logger,
	listLimit int,
	scanEvery time.Duration,
) *UseCase {
	return &UseCase{
		notifRepo:  notifRepo,
		reportRepo: reportRepo,
		cache:      cache,
		throttle:   throttle,
		log:        log,
		listLimit:  listLimit,
		scanEvery:  scanEvery,
	}
}

// ScanLowStock recorre los productos activos y crea una notificación global
// por cada uno en o bajo umbral que aún no tenga un aviso de stock bajo sin
// leer. El escaneo se dispara al entrar a rutas protegidas, así que va
// acotado por ventana: como mucho uno cada scanEvery.
func (uc *UseCase) ScanLowStock(ctx context.Context) error {
	if !uc.acquireScanWindow(ctx) {
		return nil
	}

	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return fmt.Errorf("escaneo de stock bajo: %w", err)
	}
	created := 0
	for _, p := range rows {
		if report.Classify(p.Quantity, p.MinStockLevel) == report.UrgencyInStock {
			continue
		}
		dup, err := uc.notifRepo.HasUnreadLowStock(p.ProductID)
		if err != nil {
			return fmt.Errorf("escaneo de stock bajo: %w", err)
		}
		if dup {
			continue
		}
		n := &entity.Notification{
			ID:        uuid.New().String(),
			Type:      entity.NotificationLowStock,
			Message:   lowStockMessage(p),
			ProductID: p.ProductID,
			CreatedAt: time.Now(),
		}
		if err := uc.notifRepo.Create(n); err != nil {
			return fmt.Errorf("escaneo de stock bajo: %w", err)
		}
		created++
	}
	if created > 0 {
		uc.log.Info().Int("creadas", created).Msg("notificaciones de stock bajo generadas")
	}
	return nil
}

func lowStockMessage(p report.ProductStock) string {
	if p.Quantity == 0 {
		return fmt.Sprintf("%s (%s) is out of stock", p.Name, p.SKU)
	}
	return fmt.Sprintf("%s (%s) is low on stock: %d left (min %d)", p.Name, p.SKU, p.Quantity, p.MinStockLevel)
}

// acquireScanWindow intenta tomar la ventana de escaneo. Con throttle
// distribuido usa SET NX EX; sin él, un timestamp local.
func (uc *UseCase) acquireScanWindow(ctx context.Context) bool {
	if uc.throttle != nil {
		ok, err := uc.throttle.Acquire(ctx, scanThrottleKey, uc.scanEvery)
		if err != nil {
			uc.log.Warn().Err(err).Msg("throttle de escaneo no disponible, usando ventana local")
		} else {
			return ok
		}
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	now := time.Now()
	if now.Sub(uc.lastLocalScan) < uc.scanEvery {
		return false
	}
	uc.lastLocalScan = now
	return true
}

// ListForUser devuelve las notificaciones más recientes del usuario, globales
// incluidas, hasta el tope configurado.
func (uc *UseCase) ListForUser(userID string) (*dto.NotificationListResponse, error) {
	rows, err := uc.notifRepo.ListForUser(userID, uc.listLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationDTO, 0, len(rows))
	for _, n := range rows {
		items = append(items, dto.NotificationDTO{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			ProductID: n.ProductID,
			Global:    n.UserID == "",
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{Items: items}, nil
}

// UnreadCount contador de no leídas con cache-aside de TTL corto; MarkRead
// invalida la entrada del usuario.
func (uc *UseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	key := unreadKeyPrefix + userID
	if uc.cache != nil {
		if b, err := uc.cache.Get(ctx, key); err != nil {
			uc.log.Warn().Err(err).Msg("caché de no leídas no disponible")
		} else if b != nil {
			if n, err := strconv.Atoi(string(b)); err == nil {
				return n, nil
			}
		}
	}

	n, err := uc.notifRepo.UnreadCountForUser(userID)
	if err != nil {
		return 0, err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, []byte(strconv.Itoa(n)), unreadCountTTL); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo cachear el contador de no leídas")
		}
	}
	return n, nil
}

// MarkRead marca una notificación como leída para el usuario e invalida su
// contador cacheado.
func (uc *UseCase) MarkRead(ctx context.Context, id, userID string) error {
	if err := uc.notifRepo.MarkRead(id, userID); err != nil {
		return err
	}
	if uc.cache != nil {
		if err := uc.cache.Del(ctx, unreadKeyPrefix+userID); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo invalidar el contador de no leídas")
		}
	}
	return nil
}
