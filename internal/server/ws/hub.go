// Package ws pushes game state to websocket subscribers after every move.
package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"
)

const (
	sendBuffer   = 16
	pingInterval = 15 * time.Second
	writeTimeout = 5 * time.Second
)

type client struct {
	gameID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub 按对局 ID 分组的订阅表
type Hub struct {
	mu      sync.RWMutex
	subs    map[string]map[*client]struct{}
	origins []string
}

// NewHub origins 为空时只接受同源浏览器连接
func NewHub(origins ...string) *Hub {
	return &Hub{
		subs:    make(map[string]map[*client]struct{}),
		origins: origins,
	}
}

// Subscribers 当前订阅 gameID 的连接数
func (h *Hub) Subscribers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[gameID])
}

// Publish 非阻塞地把 v 发给该对局所有订阅者，发不动的连接直接丢这一条
func (h *Hub) Publish(gameID string, v any) {
	msg, err := json.Marshal(v)
	if err != nil {
		log.Printf("ws: marshal %s: %v", gameID, err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.subs[gameID] {
		select {
		case c.send <- msg:
		default:
		}
	}
}

// ServeWS 升级连接并订阅 gameID，initial 非 nil 时先发一条
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, gameID string, initial any) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.origins})
	if err != nil {
		log.Printf("ws: accept %s: %v", gameID, err)
		return
	}

	c := &client{gameID: gameID, conn: conn, send: make(chan []byte, sendBuffer)}
	if initial != nil {
		if msg, err := json.Marshal(initial); err == nil {
			c.send <- msg
		}
	}
	h.add(c)
	log.Printf("ws: subscriber joined game %s", gameID)

	ctx, cancel := context.WithCancel(r.Context())
	defer func() {
		cancel()
		h.remove(c)
		_ = conn.Close(websocket.StatusNormalClosure, "bye")
		log.Printf("ws: subscriber left game %s", gameID)
	}()

	go h.writeLoop(ctx, c)

	// 客户端不需要发消息，读只是为了处理 pong / close
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(ctx context.Context, c *client) {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.send:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		case <-ping.C:
			_ = c.conn.Ping(ctx)
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[c.gameID]
	if !ok {
		set = make(map[*client]struct{})
		h.subs[c.gameID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[c.gameID]
	delete(set, c)
	if len(set) == 0 {
		delete(h.subs, c.gameID)
	}
}
