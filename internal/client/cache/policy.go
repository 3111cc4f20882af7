package cache

import "time"

// переопределяется в тестах
var timeNow = time.Now

// Policy управляет доверием к кэшу для одного ключа
type Policy struct {
	// StaleTime - сколько значение считается свежим. 0 = сразу stale.
	StaleTime time.Duration
	// Retry - число повторов загрузки при ошибке
	Retry int
	// TrustCache - можно ли отдавать свежий кэш без похода в сеть
	TrustCache bool
}

// Fresh сообщает, можно ли отдать закэшированное значение без сети
func (p Policy) Fresh(updatedAt time.Time) bool {
	if !p.TrustCache {
		return false
	}
	if p.StaleTime == 0 {
		return false
	}
	return timeNow().Sub(updatedAt) < p.StaleTime
}

// SerialSafePolicy - профиль для device/scan ключей: кэшу не доверяем,
// каждое чтение ведет к перезагрузке, повторов нет. Цена лишних
// запросов ниже цены показанного кассиру устаревшего состояния ридера.
func SerialSafePolicy() Policy {
	return Policy{
		StaleTime:  0,
		Retry:      0,
		TrustCache: false,
	}
}

// DefaultPolicy - профиль для медленно меняющихся данных магазина
// (каталог, котировка): кэшу доверяем в пределах minute-level окна.
func DefaultPolicy() Policy {
	return Policy{
		StaleTime:  time.Minute,
		Retry:      1,
		TrustCache: true,
	}
}
