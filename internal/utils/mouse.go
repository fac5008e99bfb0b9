package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	xConn *xgb.Conn
	xRoot xproto.Window
)

// InitX11 opens the X connection used for global pointer queries.
// Called lazily by GetGlobalMousePosition when needed.
func InitX11() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	xConn = conn
	xRoot = xproto.Setup(conn).DefaultScreen(conn).Root
	return nil
}

// GetGlobalMousePosition returns the pointer position in root-window
// coordinates, independent of which window has focus.
func GetGlobalMousePosition() (int, int, error) {
	if xConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(xConn, xRoot).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), nil
}
