//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package relay

type Publisher interface {
	Publish(channel, event string, data interface{})
}
