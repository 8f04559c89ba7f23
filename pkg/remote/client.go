package remote

import (
	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"

	"github.com/leon22heart/dolphin/internal/hotkey"
)

type client struct {
	server *Server
	conn   *websocket.Conn
	send   chan []byte
}

// readPump consumes trigger messages from the client until the
// connection drops. Messages look like
//
//	{"action": "press", "trigger": "Take Screenshot"}
//
// with action one of press or release. Unknown triggers and malformed
// messages are logged and skipped.
func (c *client) readPump() {
	defer func() {
		c.server.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		if !gjson.ValidBytes(message) {
			c.server.logger.Debugf("remote: discarding malformed message from %s", c.conn.RemoteAddr())
			continue
		}

		action := gjson.GetBytes(message, "action").String()
		name := gjson.GetBytes(message, "trigger").String()

		trigger, ok := hotkey.TriggerByName(name)
		if !ok {
			c.server.logger.Debugf("remote: unknown trigger %q", name)
			continue
		}

		switch action {
		case "press":
			c.server.keypad.Press(trigger)
		case "release":
			c.server.keypad.Release(trigger)
		default:
			c.server.logger.Debugf("remote: unknown action %q", action)
		}
	}
}

// writePump forwards broadcast command messages to the client.
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
