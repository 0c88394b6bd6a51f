// internal/event/event.go
package event

// Event — событие раунда вместе с данными выстрела
type Event struct {
	Type EventType
	Shot ShotData
}

// Listener — подписчик на события раунда
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher раздаёт события подписчикам в порядке подписки.
// Работает в игровом цикле, синхронизация не нужна.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на перечисленные типы событий.
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch — отправка события всем подписчикам его типа
func (d *Dispatcher) Dispatch(eventType EventType, shot ShotData) {
	e := Event{Type: eventType, Shot: shot}
	for _, listener := range d.listeners[eventType] {
		listener.OnEvent(e)
	}
}
