package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	settlementdto "github.com/comissio/commission-service/internal/usecase/dto/settlement"
)

// Notifier sends settlement receipts by mail. Delivery is best effort and
// never part of the settlement unit of work.
type Notifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewNotifier(host string, port int, username, password, from string) *Notifier {
	return &Notifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *Notifier) SendBatchReceipt(to string, receipt *settlementdto.BatchReceipt) error {
	if to == "" {
		return fmt.Errorf("no recipient address for employee %s", receipt.EmployeeID)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hello %s,\n\n", receipt.EmployeeName)
	fmt.Fprintf(&body, "Your commissions were settled on %s.\n\n", receipt.BatchProcessTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(&body, "Reference: %s\n", receipt.Reference)
	fmt.Fprintf(&body, "Services settled: %d\n", receipt.CommissionsPaidCount)
	fmt.Fprintf(&body, "Total paid: %s\n", receipt.TotalPaid.StringFixed(2))

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Commission settlement %s", receipt.Reference))
	m.SetBody("text/plain", body.String())

	return n.dialer.DialAndSend(m)
}
