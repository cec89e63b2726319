// Package prompt builds the extraction prompts sent to the generative
// model. Two fixed templates exist, one per content modality; both force a
// single JSON object as output and let the model reject documents that are
// not guías de remisión through a reserved "error" key.
package prompt

const header = `Eres un asistente experto en logística de Perú que extrae datos de guías de remisión.`

const instructions = `Primero decide si el documento parece ser una guía de remisión, guía de transporte o factura logística peruana.
Si NO lo es, responde SOLAMENTE con este objeto JSON y nada más:
{"error": "<un mensaje breve en español explicando por qué el documento no es válido>"}

Si SÍ lo es, extrae los campos clave y responde SOLAMENTE con un objeto JSON en este formato exacto:
{
  "date": "YYYY-MM-DD (Fecha principal del documento)",
  "ruc": "(El RUC del transportista o emisor)",
  "extractedData": {
    "fechaLlegada": "YYYY-MM-DD",
    "fechaRegistro": "YYYY-MM-DD",
    "costoTransporte": "150.00 (flotante, sin 'S/.')",
    "productos": "(Extrae una lista de productos, cantidad y unidad si es posible)"
  }
}

No incluyas explicaciones, ni markdown, ni texto fuera del objeto JSON.`

// ForText builds the prompt for text pulled out of a PDF or spreadsheet.
// The extracted text is interpolated verbatim; no truncation or sanitization
// happens here.
func ForText(text string) string {
	return header + `
Analiza el siguiente texto.

` + instructions + `

Texto a analizar:
"""
` + text + `
"""`
}

// ForImage builds the prompt for an attached image. The image itself
// travels as a separate inline content part, not inside this string.
func ForImage() string {
	return header + `
Analiza la imagen adjunta.

` + instructions
}
