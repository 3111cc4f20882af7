package models

// Scenario - серверное состояние скан-кампании, зеркалируемое клиентом.
// Между отправкой мутации и ответом сервера значение в кэше оптимистичное.
type Scenario struct {
	IsActiveScenario bool  `json:"isActiveScenario"`
	ScanMode         *Mode `json:"scanMode"`
}
