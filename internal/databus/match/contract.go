//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package match

import "encoding/json"

type NotificationRelay interface {
	Push(userID, eventType string, payload json.RawMessage) error
}
