package main

// pageCSS is the embedded stylesheet of the generated page. Mobile-first,
// single column, dark palette.
const pageCSS = `        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: #1a1a2e;
            color: #eee;
            padding: 10px;
            max-width: 600px;
            margin: 0 auto;
        }
        h1 { font-size: 1.3em; text-align: center; color: #f4a460; margin-bottom: 10px; }
        .tabs { display: flex; gap: 3px; margin-bottom: 10px; flex-wrap: wrap; }
        .tab {
            flex: 1;
            padding: 8px 3px;
            background: #16213e;
            border: none;
            color: #aaa;
            border-radius: 5px;
            cursor: pointer;
            font-size: 0.75em;
            min-width: 50px;
        }
        .tab.active { background: #e94560; color: #fff; }
        .content { display: none; }
        .content.active { display: block; }
        .section { background: #16213e; border-radius: 8px; padding: 12px; margin-bottom: 10px; }
        .section h2 { font-size: 1em; color: #f4a460; margin-bottom: 8px; border-bottom: 1px solid #333; padding-bottom: 5px; }
        .section h3 { font-size: 0.9em; color: #888; margin: 10px 0 5px 0; }
        .item { display: flex; align-items: center; padding: 6px 0; border-bottom: 1px solid #222; }
        .item:last-child { border-bottom: none; }
        .item input[type="checkbox"] { margin-right: 10px; width: 20px; height: 20px; accent-color: #e94560; }
        .item label { flex: 1; font-size: 0.9em; }
        .item .diff { font-size: 0.75em; color: #888; margin-left: 5px; }
        .item.checked label { text-decoration: line-through; color: #666; }
        .note { font-size: 0.8em; color: #f4a460; margin-top: 5px; font-style: italic; }
        .gear-checker .stat-checks { display: flex; flex-wrap: wrap; gap: 8px; margin: 10px 0; }
        .gear-checker .stat-checks label {
            background: #1a1a2e;
            padding: 6px 10px;
            border-radius: 5px;
            font-size: 0.85em;
            cursor: pointer;
            border: 1px solid #333;
            transition: all 0.2s;
        }
        .gear-checker .stat-checks label:has(input:checked) {
            background: #2d5a3d;
            border-color: #4a9;
        }
        .gear-checker .stat-checks input { margin-right: 5px; accent-color: #4a9; }
        .reroll-advice {
            background: #2a1a3e;
            padding: 10px;
            border-radius: 5px;
            margin-top: 10px;
            border-left: 3px solid #e94560;
            font-size: 0.9em;
        }
        .reroll-advice.perfect { border-left-color: #4a9; background: #1a2e1a; }
        .reroll-advice.good { border-left-color: #f4a460; background: #2e2a1a; }
        /* Stat Calculator */
        .stat-calculator .stat-inputs { display: flex; flex-direction: column; gap: 10px; }
        .stat-input-row {
            display: flex;
            justify-content: space-between;
            align-items: center;
            padding: 8px 0;
            border-bottom: 1px solid #333;
        }
        .stat-input-row label { font-size: 0.9em; flex: 1; }
        .input-with-unit {
            display: flex;
            align-items: center;
            gap: 5px;
        }
        .stat-input-row input {
            width: 80px;
            padding: 8px;
            border: 1px solid #444;
            border-radius: 5px;
            background: #1a1a2e;
            color: #fff;
            font-size: 1em;
            text-align: right;
        }
        .stat-input-row input:focus {
            outline: none;
            border-color: #e94560;
        }
        .input-with-unit span { color: #888; font-size: 0.9em; width: 20px; }
        /* Stat Results */
        .stat-result {
            display: flex;
            align-items: center;
            padding: 8px 0;
            border-bottom: 1px solid #333;
        }
        .stat-result .stat-name { width: 60px; font-weight: bold; font-size: 0.85em; }
        .stat-result .stat-bar {
            flex: 1;
            height: 20px;
            background: #1a1a2e;
            border-radius: 10px;
            overflow: hidden;
            margin: 0 10px;
        }
        .stat-result .stat-fill {
            height: 100%;
            border-radius: 10px;
            transition: width 0.3s, background 0.3s;
            width: 0%;
        }
        .stat-result .stat-value { width: 100px; text-align: right; font-size: 0.85em; }
        .stat-fill.bad { background: linear-gradient(90deg, #e94560, #c73e54); }
        .stat-fill.ok { background: linear-gradient(90deg, #f4a460, #d4843f); }
        .stat-fill.good { background: linear-gradient(90deg, #4a9, #3a8070); }
        #stat-recommendations { min-height: 60px; }
        #stat-recommendations.has-issues { border-left-color: #e94560; background: #2e1a1a; }
        #stat-recommendations.all-good { border-left-color: #4a9; background: #1a2e1a; }
        .progress { background: #333; border-radius: 10px; height: 20px; margin-bottom: 15px; overflow: hidden; }
        .progress-bar { background: linear-gradient(90deg, #e94560, #f4a460); height: 100%; transition: width 0.3s; }
        .progress-text { text-align: center; font-size: 0.8em; margin-top: 3px; color: #888; }
        .reset { background: #333; color: #888; border: none; padding: 8px 15px; border-radius: 5px; margin-top: 10px; cursor: pointer; font-size: 0.8em; }
        .reward { background: #2d4a3e; padding: 8px; border-radius: 5px; margin-top: 8px; font-size: 0.85em; }
        .reward strong { color: #4ade80; }
        .info-box { background: #2a2a4e; padding: 10px; border-radius: 5px; margin: 8px 0; font-size: 0.85em; line-height: 1.5; }
        .info-box strong { color: #f4a460; }
        .skill-table { width: 100%; font-size: 0.85em; border-collapse: collapse; margin-top: 8px; }
        .skill-table th, .skill-table td { padding: 6px 4px; text-align: left; border-bottom: 1px solid #333; }
        .skill-table th { color: #f4a460; background: #1a1a2e; }
        .skill-table td:first-child { color: #888; width: 50px; }
        .gear-slot { display: flex; justify-content: space-between; padding: 6px 0; border-bottom: 1px solid #222; font-size: 0.85em; }
        .gear-slot:last-child { border-bottom: none; }
        .gear-slot .slot { color: #888; width: 80px; }
        .gear-slot .item-name { flex: 1; color: #eee; }
        .gear-slot .stats { color: #4ade80; font-size: 0.8em; }
        .cube-slot { background: #2d2a4e; padding: 8px; border-radius: 5px; margin: 5px 0; }
        .cube-slot strong { color: #a78bfa; }
        .paragon-section { display: grid; grid-template-columns: 1fr 1fr; gap: 10px; }
        .paragon-box { background: #2a2a4e; padding: 10px; border-radius: 5px; }
        .paragon-box h4 { color: #f4a460; font-size: 0.85em; margin-bottom: 5px; }
        .paragon-box ol { margin-left: 15px; font-size: 0.8em; line-height: 1.6; }
        .altar-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 5px; font-size: 0.75em; }
        .altar-item { background: #2a2a4e; padding: 5px 8px; border-radius: 3px; }
        .altar-item span { color: #888; }
        .search-box { width: 100%; padding: 10px; border: none; border-radius: 5px; background: #2a2a4e; color: #eee; font-size: 0.9em; margin-bottom: 10px; }
        .search-box::placeholder { color: #666; }
        .boss-card { background: #2a2a4e; padding: 10px; border-radius: 5px; margin-bottom: 8px; }
        .boss-card.hidden { display: none; }
        .boss-card h4 { color: #f4a460; margin-bottom: 5px; }
        .boss-card .location { color: #4ade80; font-size: 0.85em; }
        .boss-card .waypoint { color: #888; font-size: 0.8em; }
        .boss-card .notes { color: #aaa; font-size: 0.8em; margin-top: 5px; font-style: italic; }
        .act-badge { display: inline-block; background: #e94560; color: #fff; padding: 2px 6px; border-radius: 3px; font-size: 0.7em; margin-left: 5px; }`
