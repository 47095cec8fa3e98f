package hdwallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// trxAddressPrefix is the version byte of base58check-encoded TRON addresses.
const trxAddressPrefix = 0x41

func encodeP2PKH(pubKey *btcec.PublicKey) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(pubKey.SerializeCompressed()), &chaincfg.MainNetParams,
	)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

func encodeP2SHWrappedSegwit(pubKey *btcec.PublicKey) (string, error) {
	// The redeem script is the v0 witness program OP_0 <20-byte key hash>.
	pubKeyHash := btcutil.Hash160(pubKey.SerializeCompressed())
	redeemScript := append([]byte{txscript.OP_0, 0x14}, pubKeyHash...)

	addr, err := btcutil.NewAddressScriptHash(redeemScript, &chaincfg.MainNetParams)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

func encodeP2WPKH(pubKey *btcec.PublicKey) (string, error) {
	addr, err := btcutil.NewAddressWitnessPubKeyHash(
		btcutil.Hash160(pubKey.SerializeCompressed()), &chaincfg.MainNetParams,
	)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

func encodeP2TR(pubKey *btcec.PublicKey) (string, error) {
	taprootKey := txscript.ComputeTaprootKeyNoScript(pubKey)
	addr, err := btcutil.NewAddressTaproot(
		schnorr.SerializePubKey(taprootKey), &chaincfg.MainNetParams,
	)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

func encodeEVM(pubKey *btcec.PublicKey) (string, error) {
	// Hex() applies the EIP-55 mixed-case checksum.
	return ethcrypto.PubkeyToAddress(*pubKey.ToECDSA()).Hex(), nil
}

func encodeTRX(pubKey *btcec.PublicKey) (string, error) {
	rawPubKey := ethcrypto.FromECDSAPub(pubKey.ToECDSA())
	keccak := ethcrypto.Keccak256(rawPubKey[1:])
	return base58.CheckEncode(keccak[12:], trxAddressPrefix), nil
}

func encodePrivateKey(
	privKey *btcec.PrivateKey, encoding PrivateKeyEncoding,
) (string, error) {
	if encoding == PrivateKeyWIF {
		wif, err := btcutil.NewWIF(privKey, &chaincfg.MainNetParams, true)
		if err != nil {
			return "", err
		}
		return wif.String(), nil
	}
	return hex.EncodeToString(privKey.Serialize()), nil
}
