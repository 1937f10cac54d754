// SPDX-License-Identifier: MIT

package editor

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	writeWait  = 10 * time.Second
	maxMsgSize = 64 * 1024
)

// Socket message types.
const (
	TypeView   = "view"
	TypeResult = "result"
	TypeError  = "error"
)

// Message is the server-to-client frame. Clients send bare Commands.
type Message struct {
	Type   string  `json:"type"`
	View   *View   `json:"view,omitempty"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
	Status int     `json:"status,omitempty"`
}

// Socket upgrades to a websocket for live editing. The current view is sent
// on connect; every Command received is applied and answered in order.
func (h *Handler) Socket(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.opts.OriginPatterns,
	})
	if err != nil {
		h.log.Error("websocket accept", "error", err)
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxMsgSize)

	ctx := r.Context()
	log := h.log.With("session", sess.ID)
	log.Debug("socket connected")

	v, err := sess.Snapshot()
	if err != nil {
		h.send(ctx, conn, errorMessage(err))
		return
	}
	if err := h.send(ctx, conn, Message{Type: TypeView, View: &v}); err != nil {
		return
	}

	for {
		var cmd Command
		if err := wsjson.Read(ctx, conn, &cmd); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Debug("socket closed")
			default:
				if !errors.Is(err, context.Canceled) {
					log.Debug("socket read", "error", err)
				}
			}
			return
		}

		res, err := sess.Apply(cmd)
		msg := Message{Type: TypeResult, Result: &res}
		if err != nil {
			if StatusFor(err) >= http.StatusInternalServerError {
				log.Error("socket command failed", "op", cmd.Op, "error", err)
			}
			msg = errorMessage(err)
		}
		if err := h.send(ctx, conn, msg); err != nil {
			log.Debug("socket write", "error", err)
			return
		}

		// Refresh the session TTL; sockets can outlive idle REST clients.
		if _, err := h.store.Get(sess.ID); err != nil {
			conn.Close(websocket.StatusGoingAway, "session expired")
			return
		}
	}
}

func (h *Handler) send(ctx context.Context, conn *websocket.Conn, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()

	return wsjson.Write(ctx, conn, msg)
}

func errorMessage(err error) Message {
	return Message{Type: TypeError, Error: err.Error(), Status: StatusFor(err)}
}
