package parsefetch

import "strings"

// DecodeOptions carries the per-call settings a Strategy needs.
type DecodeOptions struct {
	Reviver Reviver
}

// Strategy decodes response bodies belonging to one content-type family.
// Strategies are stateless and safe for concurrent use.
type Strategy interface {
	// Family returns the family this strategy decodes.
	Family() Family

	// CanHandle reports whether contentType belongs to the family.
	CanHandle(contentType string) bool

	// Decode reads the body of resp. Failures are returned as *DecodeError.
	Decode(resp *Response, opts DecodeOptions) (any, error)
}

// familyStrategy matches by substring against a fixed member list and reads
// the body with a single extraction mode.
type familyStrategy struct {
	family  Family
	members []string
	op      string
	read    func(resp *Response, opts DecodeOptions) (any, error)
}

func (s *familyStrategy) Family() Family {
	return s.family
}

func (s *familyStrategy) CanHandle(contentType string) bool {
	if s.members == nil {
		return true
	}
	for _, m := range s.members {
		if strings.Contains(contentType, m) {
			return true
		}
	}
	return false
}

func (s *familyStrategy) Decode(resp *Response, opts DecodeOptions) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, newDecodeError(s.op, panicError(r))
		}
	}()

	v, err = s.read(resp, opts)
	if err != nil {
		return nil, newDecodeError(s.op, err)
	}
	return v, nil
}

func readJSON(resp *Response, opts DecodeOptions) (any, error) {
	v, err := resp.JSON()
	if err != nil {
		return nil, err
	}
	if opts.Reviver == nil {
		return v, nil
	}
	return revive(v, opts.Reviver)
}

func readText(resp *Response, _ DecodeOptions) (any, error) {
	return resp.Text()
}

func readBytes(resp *Response, _ DecodeOptions) (any, error) {
	return resp.Bytes()
}

var (
	jsonStrategy = &familyStrategy{
		family:  FamilyJSON,
		members: jsonContentTypes,
		op:      "parse JSON",
		read:    readJSON,
	}
	xmlStrategy = &familyStrategy{
		family:  FamilyXML,
		members: xmlContentTypes,
		op:      "parse XML/text",
		read:    readText,
	}
	textStrategy = &familyStrategy{
		family:  FamilyText,
		members: textContentTypes,
		op:      "parse text",
		read:    readText,
	}
	additionalStrategy = &familyStrategy{
		family:  FamilyAdditional,
		members: additionalContentTypes,
		op:      "parse additional content type",
		read:    readText,
	}
	binaryStrategy = &familyStrategy{
		family:  FamilyBinary,
		members: binaryContentTypes,
		op:      "parse binary data",
		read:    readBytes,
	}

	// defaultStrategy has no members and matches every tag.
	defaultStrategy = &familyStrategy{
		family: FamilyDefault,
		op:     "parse response",
		read:   readText,
	}
)

// strategies is the registry, in precedence order.
var strategies = []Strategy{
	jsonStrategy,
	xmlStrategy,
	textStrategy,
	additionalStrategy,
	binaryStrategy,
}

// SelectStrategy returns the first registered strategy that can handle
// contentType, or the default text strategy when none can.
func SelectStrategy(contentType string) Strategy {
	for _, s := range strategies {
		if s.CanHandle(contentType) {
			return s
		}
	}
	return defaultStrategy
}

// Strategies returns the registered strategies in precedence order,
// followed by the default strategy.
func Strategies() []Strategy {
	out := make([]Strategy, 0, len(strategies)+1)
	out = append(out, strategies...)
	return append(out, defaultStrategy)
}
