package opc

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Namespaces shared by all package formats.
const (
	NSContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	NSRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSOfficeRels    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NSCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	NSDC            = "http://purl.org/dc/elements/1.1/"
	NSDCTerms       = "http://purl.org/dc/terms/"
	NSXSI           = "http://www.w3.org/2001/XMLSchema-instance"
)

// Relationship types.
const (
	RelOfficeDocument = NSOfficeRels + "/officeDocument"
	RelCoreProperties = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelStyles         = NSOfficeRels + "/styles"
	RelSlide          = NSOfficeRels + "/slide"
	RelSlideMaster    = NSOfficeRels + "/slideMaster"
	RelSlideLayout    = NSOfficeRels + "/slideLayout"
)

// Content types.
const (
	TypeRelationships  = "application/vnd.openxmlformats-package.relationships+xml"
	TypeXML            = "application/xml"
	TypeCoreProperties = "application/vnd.openxmlformats-package.core-properties+xml"
)

// Well-known part names.
const (
	ContentTypesPart   = "[Content_Types].xml"
	RootRelsPart       = "_rels/.rels"
	CorePropertiesPart = "docProps/core.xml"
)

// ContentTypes is the [Content_Types].xml manifest.
type ContentTypes struct {
	XMLName   xml.Name   `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []Default  `xml:"Default"`
	Overrides []Override `xml:"Override"`
}

// Default maps a file extension to a content type.
type Default struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Override maps a single part to a content type.
type Override struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// NewContentTypes returns a manifest with the rels and xml defaults and the
// core properties override.
func NewContentTypes() *ContentTypes {
	return &ContentTypes{
		Defaults: []Default{
			{Extension: "rels", ContentType: TypeRelationships},
			{Extension: "xml", ContentType: TypeXML},
		},
		Overrides: []Override{
			{PartName: "/" + CorePropertiesPart, ContentType: TypeCoreProperties},
		},
	}
}

// AddOverride registers a part. partName is given without the leading slash.
func (c *ContentTypes) AddOverride(partName, contentType string) {
	c.Overrides = append(c.Overrides, Override{PartName: "/" + partName, ContentType: contentType})
}

// Relationships is a .rels part.
type Relationships struct {
	XMLName       xml.Name       `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []Relationship `xml:"Relationship"`
}

// Relationship links a source part to a target.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// Add appends a relationship with the next sequential rId and returns it.
func (r *Relationships) Add(relType, target string) string {
	id := fmt.Sprintf("rId%d", len(r.Relationships)+1)
	r.Relationships = append(r.Relationships, Relationship{ID: id, Type: relType, Target: target})
	return id
}

// RootRelationships returns the package-level relationships for a main
// document part and the core properties.
func RootRelationships(mainPart string) *Relationships {
	rels := &Relationships{}
	rels.Add(RelOfficeDocument, mainPart)
	rels.Add(RelCoreProperties, CorePropertiesPart)
	return rels
}

// CoreProperties is docProps/core.xml. The prefixed names keep the output in
// the form Office applications write.
type CoreProperties struct {
	XMLName      xml.Name `xml:"cp:coreProperties"`
	XmlnsCP      string   `xml:"xmlns:cp,attr"`
	XmlnsDC      string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string   `xml:"xmlns:dcterms,attr"`
	XmlnsXSI     string   `xml:"xmlns:xsi,attr"`
	Title        string   `xml:"dc:title,omitempty"`
	Creator      string   `xml:"dc:creator"`
	Identifier   string   `xml:"dc:identifier"`
	Created      W3CDate  `xml:"dcterms:created"`
	Modified     W3CDate  `xml:"dcterms:modified"`
}

// W3CDate is a dcterms date element.
type W3CDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// Creator is written as dc:creator in generated packages.
const Creator = "officemd"

// NewCoreProperties returns core properties stamped with t and a fresh
// urn:uuid identifier.
func NewCoreProperties(title string, t time.Time) *CoreProperties {
	date := W3CDate{Type: "dcterms:W3CDTF", Value: t.UTC().Format(time.RFC3339)}
	return &CoreProperties{
		XmlnsCP:      NSCoreProps,
		XmlnsDC:      NSDC,
		XmlnsDCTerms: NSDCTerms,
		XmlnsXSI:     NSXSI,
		Title:        title,
		Creator:      Creator,
		Identifier:   uuid.New().URN(),
		Created:      date,
		Modified:     date,
	}
}
