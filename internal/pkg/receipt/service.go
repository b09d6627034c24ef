// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/order"
)

// Service renders printable PDF receipts for placed orders
type Service struct {
	config *config.Config
}

// NewService creates a new receipt service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for an order
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := receiptData{
		StoreName:    s.config.App.Name,
		OrderID:      o.ID,
		OrderDate:    o.PlacedAt.Format("January 2, 2006"),
		DeliveryDate: o.DeliveryDate.Format("January 2, 2006"),
		Order:        o,
	}

	// Generate HTML from template
	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	// Convert HTML to PDF
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from the receipt template
func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// receiptData represents the data passed to the receipt template
type receiptData struct {
	StoreName    string
	OrderID      string
	OrderDate    string
	DeliveryDate string
	Order        *order.Order
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.OrderID}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .order-details {
            margin-bottom: 30px;
        }
        .order-details td {
            padding: 5px 0;
            vertical-align: top;
        }
        .order-details .label {
            font-weight: bold;
            width: 150px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .price-col,
        .items-table .total-col {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 100px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333 !important;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div>
            <h1>{{.StoreName}}</h1>
        </div>
        <div>
            <div class="receipt-title">RECEIPT</div>
            <p><strong>Order #:</strong> {{.OrderID}}</p>
            <p><strong>Order Date:</strong> {{.OrderDate}}</p>
            <p><strong>Estimated Delivery:</strong> {{.DeliveryDate}}</p>
        </div>
    </div>

    <div class="order-details">
        <table>
            <tr>
                <td class="label">Customer:</td>
                <td>{{.Order.FullName}}</td>
            </tr>
            <tr>
                <td class="label">Email:</td>
                <td>{{.Order.Email}}</td>
            </tr>
            <tr>
                <td class="label">Shipping Address:</td>
                <td>{{.Order.Address}}</td>
            </tr>
        </table>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th class="qty-col">Qty</th>
                <th class="price-col">Price</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td><strong>{{.Title}}</strong></td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">${{printf "%.2f" .Price}}</td>
                <td class="total-col">${{printf "%.2f" .Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Subtotal:</td>
                <td class="amount">${{printf "%.2f" .Order.Subtotal}}</td>
            </tr>
            <tr>
                <td class="label">Tax:</td>
                <td class="amount">${{printf "%.2f" .Order.Tax}}</td>
            </tr>
            <tr class="total-row">
                <td class="label">Total:</td>
                <td class="amount">${{printf "%.2f" .Order.Total}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Thank you for shopping with {{.StoreName}}!</p>
        <p>This is a demo receipt. No payment was processed.</p>
    </div>
</body>
</html>
`
