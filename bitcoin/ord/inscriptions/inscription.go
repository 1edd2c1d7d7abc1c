// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package inscriptions

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/cockroachdb/errors"

	"github.com/BoostyLabs/brc20/internal/sequencereader"
)

var (
	// ErrMalformedInscription defines that inscription is malformed and failed to parse.
	ErrMalformedInscription = errors.New("inscription is malformed")
	// ErrRepeatedFieldData defines that already filled field met while parsing.
	ErrRepeatedFieldData = errors.New("field already filled")
	// ErrEmptyBody defines that inscription has no content to inscribe.
	ErrEmptyBody = errors.New("inscription body is empty")
	// ErrBodyTooLarge defines that inscription content exceeds MaxBodySize.
	ErrBodyTooLarge = errors.New("inscription body is too large")
	// ErrNoRecipient defines that inscription is not bound to a recipient public key.
	ErrNoRecipient = errors.New("inscription has no recipient")
	// ErrDataPushTooLarge defines that inscription field value does not fit into a single data push.
	ErrDataPushTooLarge = errors.New("data push is too large")
)

// MaxBodySize defines maximum inscription body size in bytes.
// Keeps the reveal transaction under the standard weight limit of 400000 WU.
const MaxBodySize int = 390_000

// inscriptionOrdTag defines ord tag for inscription to disambiguate inscriptions from other uses of envelopes.
const inscriptionOrdTag string = "ord"

// maxBodyDataPushLen defines maximum size of the data push for bitcoin scripts.
const maxBodyDataPushLen int = 520

// maxScriptDataPushes defines maximum number of the data push of maxBodyDataPushLen size for one script builder.
const maxScriptDataPushes int = 19

// Inscription describes inscription type of the inscription protocol,
// which inscribe sats with arbitrary content, creating bitcoin-native digital artifacts.
type Inscription struct {
	Body            []byte
	ContentEncoding string
	ContentType     string
	Metadata        []byte
	Metaprotocol    []byte

	recipient *btcec.PublicKey
}

// New creates inscription with provided content addressed to the recipient.
// Recipient is SEC encoded secp256k1 public key.
func New(contentType, body, recipient []byte) (*Inscription, error) {
	if len(body) == 0 {
		return nil, errors.WithStack(ErrEmptyBody)
	}
	if len(body) > MaxBodySize {
		return nil, errors.WithStack(ErrBodyTooLarge)
	}

	pubKey, err := btcec.ParsePubKey(recipient)
	if err != nil {
		return nil, errors.Wrap(err, "invalid recipient public key")
	}

	inscription := &Inscription{
		Body:        bytes.Clone(body),
		ContentType: string(contentType),
		recipient:   pubKey,
	}

	// script must be buildable for the inscription to be spendable.
	if _, err = inscription.WitnessScript(); err != nil {
		return nil, err
	}

	return inscription, nil
}

// IsPossibleInscriptionWitnessData returns true if witness data is possible to be parsed to inscription.
func IsPossibleInscriptionWitnessData(data []byte) bool {
	_, err := envelope(data)

	return err == nil
}

// scriptToken describes single script opcode with data it pushes.
type scriptToken struct {
	opcode byte
	data   []byte
}

// isPush returns true if token only pushes data onto the stack.
func (t scriptToken) isPush() bool {
	return t.opcode <= txscript.OP_16 && t.opcode != txscript.OP_RESERVED
}

// pushedBytes returns bytes pushed by the token, small integer opcodes are turned back into bytes.
func (t scriptToken) pushedBytes() []byte {
	switch {
	case t.opcode == txscript.OP_1NEGATE:
		return []byte{0x81}
	case t.opcode >= txscript.OP_1 && t.opcode <= txscript.OP_16:
		return []byte{t.opcode - (txscript.OP_1 - 1)}
	default:
		return t.data
	}
}

// tokenize splits script into opcodes.
func tokenize(script []byte) ([]scriptToken, error) {
	tokens := make([]scriptToken, 0)
	tokenizer := txscript.MakeScriptTokenizer(0, script)
	for tokenizer.Next() {
		tokens = append(tokens, scriptToken{opcode: tokenizer.Opcode(), data: tokenizer.Data()})
	}
	if tokenizer.Err() != nil {
		return nil, ErrMalformedInscription
	}

	return tokens, nil
}

// envelope returns reader of the witness data opcodes positioned right after OP_FALSE OP_IF OP_PUSH "ord".
func envelope(data []byte) (*sequencereader.SequenceReader[scriptToken], error) {
	tokens, err := tokenize(data)
	if err != nil {
		return nil, err
	}

	for idx := 0; idx+2 < len(tokens); idx++ {
		if tokens[idx].opcode != txscript.OP_FALSE || tokens[idx+1].opcode != txscript.OP_IF {
			continue
		}

		ord := tokens[idx+2]
		if !ord.isPush() || !bytes.Equal(ord.pushedBytes(), []byte(inscriptionOrdTag)) {
			continue
		}

		for _, token := range tokens[idx+3:] {
			if token.opcode == txscript.OP_ENDIF {
				sr := sequencereader.New(tokens)
				if err = sr.Skip(idx + 3); err != nil {
					return nil, ErrMalformedInscription
				}

				return sr, nil
			}
		}

		break
	}

	return nil, ErrMalformedInscription
}

// ParseInscriptionFromWitnessData parses witness data into Inscription.
// Parsed inscription is not bound to any recipient.
func ParseInscriptionFromWitnessData(data []byte) (*Inscription, error) {
	sr, err := envelope(data)
	if err != nil {
		return nil, err
	}

	inscription := new(Inscription)
	for sr.HasNext() {
		tag, _ := sr.Next()
		if tag.opcode == txscript.OP_ENDIF {
			return inscription, nil
		}
		if !tag.isPush() {
			return nil, ErrMalformedInscription
		}

		// empty push is the body tag, all next data pushes are body parts.
		if len(tag.pushedBytes()) == 0 {
			err = inscription.fillBody(sr)
		} else {
			value, nextErr := sr.Next()
			if nextErr != nil || !value.isPush() {
				return nil, ErrMalformedInscription
			}

			err = inscription.fillFieldByTag(tag.pushedBytes(), value.pushedBytes())
		}
		if err != nil {
			return nil, err
		}
	}

	return nil, ErrMalformedInscription
}

// fillBody fills Body field with body data pushes.
func (i *Inscription) fillBody(sr *sequencereader.SequenceReader[scriptToken]) error {
	body := make([]byte, 0)
	for sr.HasNext() {
		token, _ := sr.Peek()
		if token.opcode == txscript.OP_ENDIF {
			break
		}
		if !token.isPush() {
			return ErrMalformedInscription
		}

		_, _ = sr.Next()
		body = append(body, token.pushedBytes()...)
	}

	i.Body = body

	return nil
}

// fillFieldByTag fills Inscription fields by provided tag.
func (i *Inscription) fillFieldByTag(tag []byte, value []byte) error {
	if len(tag) != 1 {
		return ErrMalformedInscription
	}

	valueBytes := bytes.Clone(value)
	if valueBytes == nil {
		valueBytes = make([]byte, 0)
	}

	switch Tag(tag[0]) {
	case TagContentType:
		if len(i.ContentType) != 0 {
			return ErrRepeatedFieldData
		}

		i.ContentType = string(valueBytes)
	case TagContentEncoding:
		if len(i.ContentEncoding) != 0 {
			return ErrRepeatedFieldData
		}

		i.ContentEncoding = string(valueBytes)
	case TagMetaprotocol:
		if len(i.Metaprotocol) != 0 {
			return ErrRepeatedFieldData
		}

		i.Metaprotocol = valueBytes
	case TagMetadata:
		i.Metadata = append(i.Metadata, valueBytes...)
	default:
		if _, ok := ignoredTags[Tag(tag[0])]; !ok {
			return ErrMalformedInscription
		}
	}

	return nil
}

// IntoScript returns Inscription as an envelope script.
// Values are always pushed by data push opcodes, so single byte values keep their bytes.
func (i *Inscription) IntoScript() ([]byte, error) {
	// inscription protocol start.
	script, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_FALSE).
		AddOp(txscript.OP_IF).
		AddData([]byte(inscriptionOrdTag)).
		Script()
	if err != nil {
		return nil, err
	}

	// tags and content.
	if len(i.ContentType) != 0 {
		if script, err = appendField(script, TagContentType, []byte(i.ContentType)); err != nil {
			return nil, err
		}
	}

	for _, chunk := range chunks(i.Metadata, maxBodyDataPushLen) {
		if script, err = appendField(script, TagMetadata, chunk); err != nil {
			return nil, err
		}
	}

	if len(i.Metaprotocol) != 0 {
		if script, err = appendField(script, TagMetaprotocol, i.Metaprotocol); err != nil {
			return nil, err
		}
	}

	if len(i.ContentEncoding) != 0 {
		if script, err = appendField(script, TagContentEncoding, []byte(i.ContentEncoding)); err != nil {
			return nil, err
		}
	}

	if len(i.Body) != 0 {
		script = append(script, txscript.OP_0)
		for _, group := range i.PrepareBody() {
			for _, push := range group {
				script = appendDataPush(script, push)
			}
		}
	}

	// inscription protocol end.
	return append(script, txscript.OP_ENDIF), nil
}

// appendField appends tag and its value data pushes to the script.
func appendField(script []byte, tag Tag, value []byte) ([]byte, error) {
	if len(value) > maxBodyDataPushLen {
		return nil, errors.Wrapf(ErrDataPushTooLarge, "tag %d", tag)
	}

	script = append(script, tag.IntoDataPush()...)

	return appendDataPush(script, value), nil
}

// appendDataPush appends data to the script with the shortest OP_DATA or OP_PUSHDATA opcode for its length.
// Unlike txscript.ScriptBuilder it never replaces single byte data with small integer opcodes.
func appendDataPush(script []byte, data []byte) []byte {
	switch n := len(data); {
	case n <= txscript.OP_DATA_75:
		script = append(script, byte(n))
	case n <= math.MaxUint8:
		script = append(script, txscript.OP_PUSHDATA1, byte(n))
	default:
		script = append(script, txscript.OP_PUSHDATA2)
		script = binary.LittleEndian.AppendUint16(script, uint16(n))
	}

	return append(script, data...)
}

// PrepareBody returns Inscription body as data pushes of maxBodyDataPushLen size
// grouped by maxScriptDataPushes.
func (i *Inscription) PrepareBody() [][][]byte {
	return chunks(chunks(i.Body, maxBodyDataPushLen), maxScriptDataPushes)
}

// IntoScriptForWitness returns Inscription as a script with pubKey verify at the beginning for witness data.
func (i *Inscription) IntoScriptForWitness(serializedPubKey []byte) ([]byte, error) {
	script, err := txscript.NewScriptBuilder().
		AddData(serializedPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, err
	}

	inscription, err := i.IntoScript()
	if err != nil {
		return nil, err
	}

	return append(script, inscription...), nil
}

// Recipient returns public key the inscription is addressed to, nil for parsed inscriptions.
func (i *Inscription) Recipient() *btcec.PublicKey {
	return i.recipient
}

// WitnessScript returns tapscript locked by the recipient key with the inscription envelope.
func (i *Inscription) WitnessScript() ([]byte, error) {
	if i.recipient == nil {
		return nil, errors.WithStack(ErrNoRecipient)
	}

	return i.IntoScriptForWitness(schnorr.SerializePubKey(i.recipient))
}

// TapLeaf returns tapscript leaf of the witness script.
func (i *Inscription) TapLeaf() (txscript.TapLeaf, error) {
	script, err := i.WitnessScript()
	if err != nil {
		return txscript.TapLeaf{}, err
	}

	return txscript.NewBaseTapLeaf(script), nil
}

// TapScriptTree returns single leaf tapscript tree of the witness script.
func (i *Inscription) TapScriptTree() (*txscript.IndexedTapScriptTree, error) {
	tapLeaf, err := i.TapLeaf()
	if err != nil {
		return nil, err
	}

	return txscript.AssembleTaprootScriptTree(tapLeaf), nil
}

// OutputKey returns taproot output key committing to the witness script.
func (i *Inscription) OutputKey() (*btcec.PublicKey, error) {
	tapScriptTree, err := i.TapScriptTree()
	if err != nil {
		return nil, err
	}

	tapScriptRootHash := tapScriptTree.RootNode.TapHash()

	return txscript.ComputeTaprootOutputKey(i.recipient, tapScriptRootHash[:]), nil
}

// ControlBlock returns serialized control block to spend the commit output by the witness script.
func (i *Inscription) ControlBlock() ([]byte, error) {
	tapScriptTree, err := i.TapScriptTree()
	if err != nil {
		return nil, err
	}

	ctrlBlock := tapScriptTree.LeafMerkleProofs[0].ToControlBlock(i.recipient)

	return ctrlBlock.ToBytes()
}

// Address returns commit taproot address the inscription is revealed from.
func (i *Inscription) Address(chainParams *chaincfg.Params) (*btcutil.AddressTaproot, error) {
	outputKey, err := i.OutputKey()
	if err != nil {
		return nil, err
	}

	return btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), chainParams)
}

// PkScript returns commit output locking script.
func (i *Inscription) PkScript() ([]byte, error) {
	outputKey, err := i.OutputKey()
	if err != nil {
		return nil, err
	}

	return txscript.PayToTaprootScript(outputKey)
}

// VBytesSize returns estimated inscription input size in virtual bytes.
func (i *Inscription) VBytesSize() (int, error) {
	script, err := i.IntoScript()
	if err != nil {
		return 0, err
	}

	// INFO: pubkey size [1 byte] + pubkey [32 bytes] + OP_CHECKSIG [1 byte] + inscription script size [variable].
	return ceilQuotient(len(script)+34, 4), nil
}

// chunks splits items into parts of size length, the last part may be shorter.
func chunks[T any](items []T, size int) [][]T {
	parts := make([][]T, 0, ceilQuotient(len(items), size))
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		parts = append(parts, items[start:end])
	}

	return parts
}

// ceilQuotient returns division result with ceil function applied.
func ceilQuotient(divided, divisor int) int {
	quotient := divided / divisor
	if divided%divisor != 0 {
		quotient++
	}

	return quotient
}
