//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import "encoding/json"

type NotificationRelay interface {
	Push(userID, eventType string, payload json.RawMessage) error
}
