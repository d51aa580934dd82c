package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Evento é a mensagem enviada aos painéis abertos. O dashboard não recebe os
// dados em si: recebe o aviso e refaz a reconciliação via REST, mantendo a
// derivação de status num caminho só.
type Evento struct {
	Tipo   string `json:"tipo"` // entrada_registrada / saida_registrada / ponto_justificado
	UserID uint   `json:"user_id"`
	Data   string `json:"data"` // "YYYY-MM-DD"
}

type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte),
	}
}

func (h *Hub) Register(conn *websocket.Conn) { h.register <- conn }

func (h *Hub) Unregister(conn *websocket.Conn) { h.unregister <- conn }

// Notificar envia o evento para todos os painéis conectados.
func (h *Hub) Notificar(evento Evento) {
	payload, err := json.Marshal(evento)
	if err != nil {
		return
	}
	h.broadcast <- payload
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			log.Println("Painel conectado ao hub de ponto")

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
