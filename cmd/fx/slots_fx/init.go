package slots_fx

import (
	"log"
	"strconv"
	"time"

	"go.uber.org/fx"

	"ruralplanner/cmd/fx/ai_fx"
	"ruralplanner/internal/api/controllers"
	"ruralplanner/internal/repositories"
	"ruralplanner/internal/services"
	mem "ruralplanner/pkg/memcache"
	"ruralplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideSlotCache,
	ProvideSlotService,
	ProvideSlotsController,
)

// ProvideSlotCache builds the TTL cache that deduplicates model calls for
// identical sentences.
func ProvideSlotCache() *mem.ResponseCache {
	ttlSeconds, err := strconv.Atoi(ai_fx.GetEnvWithDefault("SLOT_CACHE_TTL_SECONDS", "900"))
	if err != nil || ttlSeconds <= 0 {
		log.Printf("Invalid SLOT_CACHE_TTL_SECONDS, using 900")
		ttlSeconds = 900
	}
	return mem.NewResponseCache(time.Duration(ttlSeconds) * time.Second)
}

func ProvideSlotService(
	aiClient utils.AIClientInterface,
	jobRepo repositories.JobRepository,
	tourRepo repositories.TourRepository,
	cache *mem.ResponseCache,
) services.SlotServiceInterface {
	return services.NewSlotService(aiClient, jobRepo, tourRepo, cache)
}

func ProvideSlotsController(slotService services.SlotServiceInterface) *controllers.SlotsController {
	return controllers.NewSlotsController(slotService)
}
