package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type storageItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	meritHash := flag.String("merit", "", "LE script hash of the Merit contract")
	collateralHash := flag.String("collateral", "", "LE script hash of the Collateral contract")
	governanceHash := flag.String("governance", "", "LE script hash of the Governance contract (optional)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	case *meritHash == "":
		log.Fatal("missing Merit contract hash")
	case *collateralHash == "":
		log.Fatal("missing Collateral contract hash")
	}

	contracts := map[string]string{
		"merit":      *meritHash,
		"collateral": *collateralHash,
	}
	if *governanceHash != "" {
		contracts["governance"] = *governanceHash
	}

	rootDir := filepath.Join("testdata", *chainLabel)

	err := os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, rootDir, contracts)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Merit contracts are successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir string, contracts map[string]string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	for name, hashLE := range contracts {
		log.Printf("Processing contract '%s'...\n", name)

		h, err := util.Uint160DecodeStringLE(hashLE)
		if err != nil {
			return fmt.Errorf("decode '%s' contract hash: %w", name, err)
		}

		err = dumpContract(b, rootDir, name, h)
		if err != nil {
			return fmt.Errorf("dump '%s' contract storage: %w", name, err)
		}
	}

	return nil
}

// dumpContract writes all storage items of the contract referenced by given
// address into a JSON file named after the contract. Keys and values are
// base58-encoded since most of them are raw binary.
func dumpContract(from *remoteBlockchain, rootDir, name string, contract util.Uint160) error {
	var items []storageItem

	err := from.iterateContractStorage(contract, func(key, value []byte) error {
		items = append(items, storageItem{
			Key:   base58.Encode(key),
			Value: base58.Encode(value),
		})
		return nil
	})
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(rootDir, name+".json"))
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	err = enc.Encode(items)
	if err != nil {
		return fmt.Errorf("encode storage items: %w", err)
	}

	return f.Close()
}
