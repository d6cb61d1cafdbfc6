// =============================================================================
// Trucking Delivery Tracker - XML Writer Module
// =============================================================================
//
// Generates an XML document from the stored deliveries, for systems that
// take a bulk XML upload instead of a spreadsheet.
//
// XML STRUCTURE:
//
//   <deliveries>                                   <!-- Root element -->
//     <delivery n="1">                             <!-- One per CSV row -->
//       <date>01-12-2024</date>
//       <mileage>200</mileage>
//       <load_type>Refrigerated</load_type>
//       <delivery_details>Cold Storage</delivery_details>
//     </delivery>
//     <delivery n="2">
//       <date>02-12-2024</date>
//       <mileage>150.5</mileage>
//       <load_type>Dry</load_type>
//       <delivery_details/>                        <!-- Empty value -->
//     </delivery>
//   </deliveries>
//
// Field element names are the CSV column names. Columns added by hand to the
// data file are exported too, with characters that are not legal in an XML
// name replaced by '_'.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/store"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
	"github.com/ginjaninja78/trucking-delivery-tracker/pkg/utils"
)

// =============================================================================
// XML GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for XML generation.
type GenerateOptions struct {
	// Indent is the string used for indentation.
	// Default: "  " (two spaces)
	Indent string

	// IncludeXMLDeclaration determines whether to include the XML declaration.
	// Default: true
	IncludeXMLDeclaration bool

	// RootElement wraps the whole document.
	// Default: "deliveries"
	RootElement string

	// RecordElement wraps each delivery.
	// Default: "delivery"
	RecordElement string

	// IndexAttribute carries the 1-based row number on each record element.
	// Empty omits it.
	// Default: "n"
	IndexAttribute string
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
		RootElement:           "deliveries",
		RecordElement:         "delivery",
		IndexAttribute:        "n",
	}
}

// =============================================================================
// XML GENERATION FUNCTIONS
// =============================================================================

// Generate creates an XML document from table with the default options.
func Generate(table *store.Table) ([]byte, error) {
	return GenerateWithOptions(table, DefaultGenerateOptions())
}

// GenerateWithOptions creates an XML document with custom options.
//
// PARAMETERS:
//   - table: The loaded deliveries, header plus rows.
//   - options: The generation options.
//
// RETURNS:
//   - The XML document as a byte slice.
//   - An error if an element name cannot be built.
func GenerateWithOptions(table *store.Table, options GenerateOptions) ([]byte, error) {
	if !isXMLName(options.RootElement) || !isXMLName(options.RecordElement) {
		return nil, fmt.Errorf("invalid element names %q / %q", options.RootElement, options.RecordElement)
	}
	if options.IndexAttribute != "" && !isXMLName(options.IndexAttribute) {
		return nil, fmt.Errorf("invalid attribute name %q", options.IndexAttribute)
	}

	tags := make([]string, len(table.Header))
	for i, h := range table.Header {
		tags[i] = elementName(h)
	}

	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	}

	root := xmlElement{Name: options.RootElement}
	for i, row := range table.Rows {
		record := xmlElement{Name: options.RecordElement}
		if options.IndexAttribute != "" {
			record.Attributes = append(record.Attributes, xmlAttr{options.IndexAttribute, fmt.Sprintf("%d", i+1)})
		}
		for j, tag := range tags {
			record.Children = append(record.Children, xmlElement{Name: tag, Value: row[j]})
		}
		root.Children = append(root.Children, record)
	}

	if len(root.Children) == 0 {
		fmt.Fprintf(&buffer, "<%s/>\n", root.Name)
		return buffer.Bytes(), nil
	}
	writeElement(&buffer, root, options.Indent, 0)

	return buffer.Bytes(), nil
}

// WriteFile generates the document for table and writes it to path.
func WriteFile(table *store.Table, path string) error {
	data, err := Generate(table)
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// =============================================================================
// XML DOCUMENT BUILDING
// =============================================================================

type xmlAttr struct {
	Name  string
	Value string
}

// xmlElement is either a leaf with a text value or a parent with children.
type xmlElement struct {
	Name       string
	Attributes []xmlAttr
	Value      string
	Children   []xmlElement
}

// writeElement writes an element and its children with indentation.
func writeElement(buffer *bytes.Buffer, element xmlElement, indent string, level int) {
	buffer.WriteString(strings.Repeat(indent, level))

	buffer.WriteString("<")
	buffer.WriteString(element.Name)
	for _, attr := range element.Attributes {
		fmt.Fprintf(buffer, " %s=\"%s\"", attr.Name, escapeXML(attr.Value))
	}

	if len(element.Children) == 0 && element.Value == "" {
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	if len(element.Children) == 0 {
		buffer.WriteString(escapeXML(element.Value))
	} else {
		buffer.WriteString("\n")
		for _, child := range element.Children {
			writeElement(buffer, child, indent, level+1)
		}
		buffer.WriteString(strings.Repeat(indent, level))
	}

	buffer.WriteString("</")
	buffer.WriteString(element.Name)
	buffer.WriteString(">\n")
}

// escapeXML escapes special characters for XML.
func escapeXML(s string) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// elementName turns a column name into a legal XML element name.
func elementName(column string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(column) {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
			b.WriteRune(r)
		case i == 0 && unicode.IsDigit(r):
			b.WriteString("_")
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

func isXMLName(s string) bool {
	return s != "" && elementName(s) == s
}

// =============================================================================
// XSD GENERATION
// =============================================================================

// GenerateXSD returns an XSD describing documents produced with the default
// options for the fixed delivery columns. Load types are restricted to the
// known labels and dates to the DD-MM-YYYY shape.
func GenerateXSD() []byte {
	var buffer bytes.Buffer
	opts := DefaultGenerateOptions()

	buffer.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
`)

	fmt.Fprintf(&buffer, `  <xs:element name="%s">
    <xs:complexType>
      <xs:sequence>
        <xs:element ref="%s" minOccurs="0" maxOccurs="unbounded"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>

`, opts.RootElement, opts.RecordElement)

	fmt.Fprintf(&buffer, `  <xs:element name="%s">
    <xs:complexType>
      <xs:sequence>
`, opts.RecordElement)

	fmt.Fprintf(&buffer, `        <xs:element name="%s">
          <xs:simpleType>
            <xs:restriction base="xs:string">
              <xs:pattern value="\d{2}-\d{2}-\d{4}"/>
            </xs:restriction>
          </xs:simpleType>
        </xs:element>
`, types.ColumnDate)

	fmt.Fprintf(&buffer, `        <xs:element name="%s">
          <xs:simpleType>
            <xs:restriction base="xs:decimal">
              <xs:minInclusive value="0"/>
            </xs:restriction>
          </xs:simpleType>
        </xs:element>
`, types.ColumnMileage)

	fmt.Fprintf(&buffer, `        <xs:element name="%s">
          <xs:simpleType>
            <xs:restriction base="xs:string">
`, types.ColumnLoadType)
	for _, l := range types.LoadTypes {
		fmt.Fprintf(&buffer, "              <xs:enumeration value=\"%s\"/>\n", escapeXML(l.String()))
	}
	buffer.WriteString(`            </xs:restriction>
          </xs:simpleType>
        </xs:element>
`)

	fmt.Fprintf(&buffer, "        <xs:element name=\"%s\" type=\"xs:string\"/>\n", types.ColumnDeliveryDetails)

	fmt.Fprintf(&buffer, `      </xs:sequence>
      <xs:attribute name="%s" type="xs:positiveInteger" use="required"/>
    </xs:complexType>
  </xs:element>

</xs:schema>
`, opts.IndexAttribute)

	return buffer.Bytes()
}
