package checkout

import (
	"html/template"
	"io"
	"strings"
)

const receiptTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Reçu - {{.Summary.BusinessName}}</title>
    <style>
      body { font-family: 'Courier New', monospace; padding: 20px; max-width: 300px; margin: 0 auto; }
      .header { text-align: center; margin-bottom: 20px; border-bottom: 2px solid #000; padding-bottom: 10px; }
      .footer { text-align: center; margin-top: 20px; border-top: 1px solid #000; padding-top: 10px; font-size: 12px; }
      .row { display: flex; justify-content: space-between; }
      .item { margin-bottom: 10px; border-bottom: 1px dashed #eee; padding-bottom: 5px; }
      .options { font-size: 12px; color: #666; }
      .total { font-weight: bold; margin-top: 10px; font-size: 18px; }
      .info { font-size: 12px; margin-bottom: 15px; }
    </style>
  </head>
  <body>
    <div class="header">
      <h2 style="margin:0">{{.Summary.BusinessName}}</h2>
      {{- if .City}}
      <p style="margin:5px 0">{{.City}}</p>
      {{- end}}
    </div>
    <div class="info">
      <div>Date: {{.Summary.Date}} {{.Summary.Time}}</div>
      <div>Type: {{.Summary.ModeLabel}}</div>
      {{- if .Summary.Selection.IsDelivery}}
      <div>Adresse: {{.Summary.Selection.Address}}</div>
      {{- end}}
    </div>
    <div class="items">
      {{- range .Summary.Lines}}
      <div class="row item">
        <div>
          <div style="font-weight: bold;">{{.Quantity}}x {{.Name}}</div>
          {{- if .Options}}
          <div class="options">+ {{join .Options}}</div>
          {{- end}}
        </div>
        <div>{{$.Summary.Money .LineTotal}}</div>
      </div>
      {{- end}}
    </div>
    <div style="margin-top: 15px; border-top: 1px solid #000; padding-top: 5px;">
      <div class="row"><span>Sous-total:</span><span>{{.Summary.Money .Summary.Totals.Subtotal}}</span></div>
      {{- if .Summary.Selection.IsDelivery}}
      <div class="row"><span>Livraison:</span><span>{{.Summary.Money .Summary.Totals.DeliveryFee}}</span></div>
      {{- end}}
      <div class="row total"><span>TOTAL:</span><span>{{.Summary.Money .Summary.Totals.Total}}</span></div>
    </div>
    <div class="footer">
      <p>Merci de votre visite !</p>
      <p>À bientôt</p>
    </div>
    <script>
      window.onload = function() { window.print(); }
    </script>
  </body>
</html>
`

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"join": func(values []string) string { return strings.Join(values, ", ") },
}).Parse(receiptTemplate))

type receiptView struct {
	Summary OrderSummary
	City    string
}

// RenderReceipt writes the printable receipt. Every value is HTML escaped
// and the page opens the print dialog once loaded.
func RenderReceipt(w io.Writer, summary OrderSummary, city string) error {
	return receiptTmpl.Execute(w, receiptView{Summary: summary, City: city})
}
